package api

import (
	"context"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type UserStorage struct {
	client *Client
}

func NewUserStorage(client *Client) *UserStorage {
	return &UserStorage{
		client: client,
	}
}

func (s *UserStorage) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := s.client.Get(ctx, "/usuarios", nil, &users)
	return users, err
}

func (s *UserStorage) Get(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := s.client.Get(ctx, "/usuarios/"+strconv.FormatInt(id, 10), nil, &user)
	return &user, err
}

func (s *UserStorage) Profile(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := s.client.Get(ctx, "/usuarios/perfil/"+strconv.FormatInt(id, 10), nil, &user)
	return &user, err
}

func (s *UserStorage) Deactivate(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/usuarios/"+strconv.FormatInt(id, 10)+"/desactivar", nil, nil, nil)
}
