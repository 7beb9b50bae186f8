package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type HubStorage struct {
	client *Client
}

func NewHubStorage(client *Client) *HubStorage {
	return &HubStorage{
		client: client,
	}
}

func (s *HubStorage) List(ctx context.Context) ([]entity.Hub, error) {
	var hubs []entity.Hub
	err := s.client.Get(ctx, "/hubs", nil, &hubs)
	return hubs, err
}

func (s *HubStorage) Get(ctx context.Context, id int64) (*entity.Hub, error) {
	var hub entity.Hub
	err := s.client.Get(ctx, "/hubs/"+strconv.FormatInt(id, 10), nil, &hub)
	return &hub, err
}

func (s *HubStorage) Create(ctx context.Context, hub *entity.Hub, adminID int64) (*entity.Hub, error) {
	params := url.Values{}
	params.Set("adminId", strconv.FormatInt(adminID, 10))
	var created entity.Hub
	err := s.client.Post(ctx, "/hubs", params, hub, &created)
	return &created, err
}

func (s *HubStorage) Update(ctx context.Context, hub *entity.Hub) (*entity.Hub, error) {
	var updated entity.Hub
	err := s.client.Put(ctx, "/hubs/"+strconv.FormatInt(hub.ID, 10), nil, hub, &updated)
	return &updated, err
}

func (s *HubStorage) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/hubs/"+strconv.FormatInt(id, 10), nil)
}

func (s *HubStorage) Activate(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/hubs/"+strconv.FormatInt(id, 10)+"/activar", nil, nil, nil)
}

func (s *HubStorage) Deactivate(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/hubs/"+strconv.FormatInt(id, 10)+"/inactivar", nil, nil, nil)
}
