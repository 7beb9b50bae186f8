package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type AuthStorage interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	Me(ctx context.Context) (*entity.User, error)
}

type SessionStorage interface {
	Token(ctx context.Context, adminID int64) (string, error)
	Profile(ctx context.Context, adminID int64) (*entity.User, error)
	Save(ctx context.Context, adminID int64, session *entity.Session) error
	Clear(ctx context.Context, adminID int64) error
}

// AuthService owns the session lifecycle: login stores token+profile,
// Restore rehydrates a session on first contact, logout clears both keys.
type AuthService struct {
	storage  AuthStorage
	sessions SessionStorage
}

func NewAuthService(storage AuthStorage, sessions SessionStorage) *AuthService {
	return &AuthService{
		storage:  storage,
		sessions: sessions,
	}
}

func (s *AuthService) Login(ctx context.Context, adminID int64, email, password string) (*entity.Session, error) {
	session, err := s.storage.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err = s.sessions.Save(ctx, adminID, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Restore returns the stored profile for the admin, fetching it from the
// backend when only the token survived. Returns nil without error when no
// session exists.
func (s *AuthService) Restore(ctx context.Context, adminID int64) (*entity.User, error) {
	token, err := s.sessions.Token(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	profile, err := s.sessions.Profile(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	user, err := s.storage.Me(ctx)
	if err != nil {
		return nil, err
	}
	if err = s.sessions.Save(ctx, adminID, &entity.Session{Token: token, User: *user}); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, adminID int64) error {
	return s.sessions.Clear(ctx, adminID)
}
