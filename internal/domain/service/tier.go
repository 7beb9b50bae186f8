package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type TierStorage interface {
	List(ctx context.Context) ([]entity.Tier, error)
	Get(ctx context.Context, id int64) (*entity.Tier, error)
	Create(ctx context.Context, tier *entity.Tier) (*entity.Tier, error)
	Update(ctx context.Context, tier *entity.Tier) (*entity.Tier, error)
	Delete(ctx context.Context, id int64) error
}

type TierService struct {
	storage TierStorage
}

func NewTierService(storage TierStorage) *TierService {
	return &TierService{
		storage: storage,
	}
}

func (s *TierService) List(ctx context.Context) ([]entity.Tier, error) {
	return s.storage.List(ctx)
}

func (s *TierService) Get(ctx context.Context, id int64) (*entity.Tier, error) {
	return s.storage.Get(ctx, id)
}

func (s *TierService) Create(ctx context.Context, tier *entity.Tier) (*entity.Tier, error) {
	return s.storage.Create(ctx, tier)
}

func (s *TierService) Update(ctx context.Context, tier *entity.Tier) (*entity.Tier, error) {
	return s.storage.Update(ctx, tier)
}

func (s *TierService) Delete(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}
