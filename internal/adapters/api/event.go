package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type EventStorage struct {
	client *Client
}

func NewEventStorage(client *Client) *EventStorage {
	return &EventStorage{
		client: client,
	}
}

func (s *EventStorage) List(ctx context.Context, hubID, clubID int64) ([]entity.Event, error) {
	params := url.Values{}
	if hubID > 0 {
		params.Set("hubId", strconv.FormatInt(hubID, 10))
	}
	if clubID > 0 {
		params.Set("clubId", strconv.FormatInt(clubID, 10))
	}
	var events []entity.Event
	err := s.client.Get(ctx, "/eventos", params, &events)
	return events, err
}

func (s *EventStorage) Get(ctx context.Context, id int64) (*entity.Event, error) {
	var event entity.Event
	err := s.client.Get(ctx, "/eventos/"+strconv.FormatInt(id, 10), nil, &event)
	return &event, err
}

func (s *EventStorage) Create(ctx context.Context, event *entity.Event, hubID, clubID int64) (*entity.Event, error) {
	params := url.Values{}
	if hubID > 0 {
		params.Set("hubId", strconv.FormatInt(hubID, 10))
	}
	if clubID > 0 {
		params.Set("clubId", strconv.FormatInt(clubID, 10))
	}
	var created entity.Event
	err := s.client.Post(ctx, "/eventos", params, event, &created)
	return &created, err
}

func (s *EventStorage) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	var updated entity.Event
	err := s.client.Put(ctx, "/eventos/"+strconv.FormatInt(event.ID, 10), nil, event, &updated)
	return &updated, err
}

func (s *EventStorage) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/eventos/"+strconv.FormatInt(id, 10), nil)
}
