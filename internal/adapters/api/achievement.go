package api

import (
	"context"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type AchievementStorage struct {
	client *Client
}

func NewAchievementStorage(client *Client) *AchievementStorage {
	return &AchievementStorage{
		client: client,
	}
}

func (s *AchievementStorage) List(ctx context.Context) ([]entity.Achievement, error) {
	var achievements []entity.Achievement
	err := s.client.Get(ctx, "/logros", nil, &achievements)
	return achievements, err
}

func (s *AchievementStorage) Get(ctx context.Context, id int64) (*entity.Achievement, error) {
	var achievement entity.Achievement
	err := s.client.Get(ctx, "/logros/"+strconv.FormatInt(id, 10), nil, &achievement)
	return &achievement, err
}

func (s *AchievementStorage) Create(ctx context.Context, achievement *entity.Achievement) (*entity.Achievement, error) {
	var created entity.Achievement
	err := s.client.Post(ctx, "/logros", nil, achievement, &created)
	return &created, err
}

func (s *AchievementStorage) Update(ctx context.Context, achievement *entity.Achievement) (*entity.Achievement, error) {
	var updated entity.Achievement
	err := s.client.Put(ctx, "/logros/"+strconv.FormatInt(achievement.ID, 10), nil, achievement, &updated)
	return &updated, err
}

func (s *AchievementStorage) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/logros/"+strconv.FormatInt(id, 10), nil)
}
