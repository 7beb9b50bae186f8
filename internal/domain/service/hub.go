package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type HubStorage interface {
	List(ctx context.Context) ([]entity.Hub, error)
	Get(ctx context.Context, id int64) (*entity.Hub, error)
	Create(ctx context.Context, hub *entity.Hub, adminID int64) (*entity.Hub, error)
	Update(ctx context.Context, hub *entity.Hub) (*entity.Hub, error)
	Delete(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
}

type HubService struct {
	storage HubStorage
}

func NewHubService(storage HubStorage) *HubService {
	return &HubService{
		storage: storage,
	}
}

func (s *HubService) List(ctx context.Context) ([]entity.Hub, error) {
	return s.storage.List(ctx)
}

func (s *HubService) Get(ctx context.Context, id int64) (*entity.Hub, error) {
	return s.storage.Get(ctx, id)
}

func (s *HubService) Create(ctx context.Context, hub *entity.Hub, adminID int64) (*entity.Hub, error) {
	return s.storage.Create(ctx, hub, adminID)
}

func (s *HubService) Update(ctx context.Context, hub *entity.Hub) (*entity.Hub, error) {
	return s.storage.Update(ctx, hub)
}

func (s *HubService) Delete(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}

func (s *HubService) Activate(ctx context.Context, id int64) error {
	return s.storage.Activate(ctx, id)
}

func (s *HubService) Deactivate(ctx context.Context, id int64) error {
	return s.storage.Deactivate(ctx, id)
}
