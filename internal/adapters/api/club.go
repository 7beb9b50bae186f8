package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type ClubStorage struct {
	client *Client
}

func NewClubStorage(client *Client) *ClubStorage {
	return &ClubStorage{
		client: client,
	}
}

// List returns all clubs, optionally scoped to a hub (hubID > 0).
func (s *ClubStorage) List(ctx context.Context, hubID int64) ([]entity.Club, error) {
	params := url.Values{}
	if hubID > 0 {
		params.Set("hubId", strconv.FormatInt(hubID, 10))
	}
	var clubs []entity.Club
	err := s.client.Get(ctx, "/clubes", params, &clubs)
	return clubs, err
}

func (s *ClubStorage) Get(ctx context.Context, id int64) (*entity.Club, error) {
	var club entity.Club
	err := s.client.Get(ctx, "/clubes/"+strconv.FormatInt(id, 10), nil, &club)
	return &club, err
}

// Create reshapes the flat club form into the backend's
// create-with-parent-reference call: hub and host travel as query params.
func (s *ClubStorage) Create(ctx context.Context, club *entity.Club, hubID, hostID int64) (*entity.Club, error) {
	params := url.Values{}
	params.Set("hubId", strconv.FormatInt(hubID, 10))
	params.Set("anfitrionId", strconv.FormatInt(hostID, 10))
	var created entity.Club
	err := s.client.Post(ctx, "/clubes", params, club, &created)
	return &created, err
}

func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	var updated entity.Club
	err := s.client.Put(ctx, "/clubes/"+strconv.FormatInt(club.ID, 10), nil, club, &updated)
	return &updated, err
}

func (s *ClubStorage) Approve(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/clubes/"+strconv.FormatInt(id, 10)+"/aprobar", nil, nil, nil)
}

// Reject requires a non-empty reason; the backend relays it to the host.
func (s *ClubStorage) Reject(ctx context.Context, id int64, reason string) error {
	body := map[string]string{"motivo": reason}
	return s.client.Patch(ctx, "/clubes/"+strconv.FormatInt(id, 10)+"/rechazar", nil, body, nil)
}

func (s *ClubStorage) Activate(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/clubes/"+strconv.FormatInt(id, 10)+"/activar", nil, nil, nil)
}

func (s *ClubStorage) Deactivate(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/clubes/"+strconv.FormatInt(id, 10)+"/desactivar", nil, nil, nil)
}
