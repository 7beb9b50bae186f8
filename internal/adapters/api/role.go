package api

import (
	"context"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type RoleStorage struct {
	client *Client
}

func NewRoleStorage(client *Client) *RoleStorage {
	return &RoleStorage{
		client: client,
	}
}

func (s *RoleStorage) List(ctx context.Context) ([]entity.Role, error) {
	var roles []entity.Role
	err := s.client.Get(ctx, "/roles", nil, &roles)
	return roles, err
}

func (s *RoleStorage) Get(ctx context.Context, id int64) (*entity.Role, error) {
	var role entity.Role
	err := s.client.Get(ctx, "/roles/"+strconv.FormatInt(id, 10), nil, &role)
	return &role, err
}

func (s *RoleStorage) Create(ctx context.Context, role *entity.Role) (*entity.Role, error) {
	var created entity.Role
	err := s.client.Post(ctx, "/roles", nil, role, &created)
	return &created, err
}

func (s *RoleStorage) Update(ctx context.Context, role *entity.Role) (*entity.Role, error) {
	var updated entity.Role
	err := s.client.Put(ctx, "/roles/"+strconv.FormatInt(role.ID, 10), nil, role, &updated)
	return &updated, err
}

func (s *RoleStorage) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/roles/"+strconv.FormatInt(id, 10), nil)
}
