package api

import (
	"context"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type OrderStorage struct {
	client *Client
}

func NewOrderStorage(client *Client) *OrderStorage {
	return &OrderStorage{
		client: client,
	}
}

func (s *OrderStorage) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := s.client.Get(ctx, "/pedidos", nil, &orders)
	return orders, err
}

func (s *OrderStorage) ListByClub(ctx context.Context, clubID int64) ([]entity.Order, error) {
	var orders []entity.Order
	err := s.client.Get(ctx, "/pedidos/club/"+strconv.FormatInt(clubID, 10), nil, &orders)
	return orders, err
}
