package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type UserStorage interface {
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	Profile(ctx context.Context, id int64) (*entity.User, error)
	Deactivate(ctx context.Context, id int64) error
}

type UserService struct {
	storage UserStorage
}

func NewUserService(storage UserStorage) *UserService {
	return &UserService{
		storage: storage,
	}
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.storage.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	return s.storage.Get(ctx, id)
}

func (s *UserService) Profile(ctx context.Context, id int64) (*entity.User, error) {
	return s.storage.Profile(ctx, id)
}

// Deactivate refuses ADMIN accounts before touching the backend.
func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return errorz.ErrAdminLocked
	}
	return s.storage.Deactivate(ctx, id)
}
