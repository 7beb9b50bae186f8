package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type RoleStorage interface {
	List(ctx context.Context) ([]entity.Role, error)
	Get(ctx context.Context, id int64) (*entity.Role, error)
	Create(ctx context.Context, role *entity.Role) (*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) (*entity.Role, error)
	Delete(ctx context.Context, id int64) error
}

type RoleService struct {
	storage RoleStorage
}

func NewRoleService(storage RoleStorage) *RoleService {
	return &RoleService{
		storage: storage,
	}
}

func (s *RoleService) List(ctx context.Context) ([]entity.Role, error) {
	return s.storage.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id int64) (*entity.Role, error) {
	return s.storage.Get(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, role *entity.Role) (*entity.Role, error) {
	return s.storage.Create(ctx, role)
}

func (s *RoleService) Update(ctx context.Context, role *entity.Role) (*entity.Role, error) {
	return s.storage.Update(ctx, role)
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}
