package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type AchievementStorage interface {
	List(ctx context.Context) ([]entity.Achievement, error)
	Get(ctx context.Context, id int64) (*entity.Achievement, error)
	Create(ctx context.Context, achievement *entity.Achievement) (*entity.Achievement, error)
	Update(ctx context.Context, achievement *entity.Achievement) (*entity.Achievement, error)
	Delete(ctx context.Context, id int64) error
}

type AchievementService struct {
	storage AchievementStorage
}

func NewAchievementService(storage AchievementStorage) *AchievementService {
	return &AchievementService{
		storage: storage,
	}
}

func (s *AchievementService) List(ctx context.Context) ([]entity.Achievement, error) {
	return s.storage.List(ctx)
}

func (s *AchievementService) Get(ctx context.Context, id int64) (*entity.Achievement, error) {
	return s.storage.Get(ctx, id)
}

func (s *AchievementService) Create(ctx context.Context, achievement *entity.Achievement) (*entity.Achievement, error) {
	return s.storage.Create(ctx, achievement)
}

func (s *AchievementService) Update(ctx context.Context, achievement *entity.Achievement) (*entity.Achievement, error) {
	return s.storage.Update(ctx, achievement)
}

func (s *AchievementService) Delete(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}
