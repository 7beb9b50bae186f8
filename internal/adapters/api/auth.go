package api

import (
	"context"
	"errors"

	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type AuthStorage struct {
	client *Client
}

func NewAuthStorage(client *Client) *AuthStorage {
	return &AuthStorage{
		client: client,
	}
}

// Login exchanges credentials for a session. The call carries no bearer
// token; the caller persists the returned token before any protected call.
func (s *AuthStorage) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var session entity.Session
	err := s.client.Post(ctx, "/auth/login", nil, body, &session)
	if err != nil {
		// A 401 on the login route means bad credentials, not a stale
		// session.
		if errors.Is(err, errorz.ErrSessionExpired) {
			return nil, errorz.ErrInvalidCredentials
		}
		return nil, err
	}
	return &session, nil
}

// Me returns the profile behind the current token.
func (s *AuthStorage) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	err := s.client.Get(ctx, "/auth/me", nil, &user)
	return &user, err
}
