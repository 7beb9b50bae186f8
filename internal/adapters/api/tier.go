package api

import (
	"context"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type TierStorage struct {
	client *Client
}

func NewTierStorage(client *Client) *TierStorage {
	return &TierStorage{
		client: client,
	}
}

func (s *TierStorage) List(ctx context.Context) ([]entity.Tier, error) {
	var tiers []entity.Tier
	err := s.client.Get(ctx, "/niveles-socio", nil, &tiers)
	return tiers, err
}

func (s *TierStorage) Get(ctx context.Context, id int64) (*entity.Tier, error) {
	var tier entity.Tier
	err := s.client.Get(ctx, "/niveles-socio/"+strconv.FormatInt(id, 10), nil, &tier)
	return &tier, err
}

func (s *TierStorage) Create(ctx context.Context, tier *entity.Tier) (*entity.Tier, error) {
	var created entity.Tier
	err := s.client.Post(ctx, "/niveles-socio", nil, tier, &created)
	return &created, err
}

func (s *TierStorage) Update(ctx context.Context, tier *entity.Tier) (*entity.Tier, error) {
	var updated entity.Tier
	err := s.client.Put(ctx, "/niveles-socio/"+strconv.FormatInt(tier.ID, 10), nil, tier, &updated)
	return &updated, err
}

func (s *TierStorage) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/niveles-socio/"+strconv.FormatInt(id, 10), nil)
}
