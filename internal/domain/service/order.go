package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type OrderStorage interface {
	List(ctx context.Context) ([]entity.Order, error)
	ListByClub(ctx context.Context, clubID int64) ([]entity.Order, error)
}

type OrderService struct {
	storage OrderStorage
}

func NewOrderService(storage OrderStorage) *OrderService {
	return &OrderService{
		storage: storage,
	}
}

func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	return s.storage.List(ctx)
}

func (s *OrderService) ListByClub(ctx context.Context, clubID int64) ([]entity.Order, error) {
	return s.storage.ListByClub(ctx, clubID)
}
