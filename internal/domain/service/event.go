package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type EventStorage interface {
	List(ctx context.Context, hubID, clubID int64) ([]entity.Event, error)
	Get(ctx context.Context, id int64) (*entity.Event, error)
	Create(ctx context.Context, event *entity.Event, hubID, clubID int64) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id int64) error
}

type EventService struct {
	storage EventStorage
}

func NewEventService(storage EventStorage) *EventService {
	return &EventService{
		storage: storage,
	}
}

func (s *EventService) List(ctx context.Context, hubID, clubID int64) ([]entity.Event, error) {
	return s.storage.List(ctx, hubID, clubID)
}

func (s *EventService) Get(ctx context.Context, id int64) (*entity.Event, error) {
	return s.storage.Get(ctx, id)
}

func (s *EventService) Create(ctx context.Context, event *entity.Event, hubID, clubID int64) (*entity.Event, error) {
	return s.storage.Create(ctx, event, hubID, clubID)
}

func (s *EventService) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	return s.storage.Update(ctx, event)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}
