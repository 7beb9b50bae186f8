package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type MembershipStorage struct {
	client *Client
}

func NewMembershipStorage(client *Client) *MembershipStorage {
	return &MembershipStorage{
		client: client,
	}
}

func (s *MembershipStorage) Get(ctx context.Context, id int64) (*entity.Membership, error) {
	var membership entity.Membership
	err := s.client.Get(ctx, "/membresias/"+strconv.FormatInt(id, 10), nil, &membership)
	return &membership, err
}

func (s *MembershipStorage) GetByUser(ctx context.Context, userID int64) (*entity.Membership, error) {
	var membership entity.Membership
	err := s.client.Get(ctx, "/membresias/usuario/"+strconv.FormatInt(userID, 10), nil, &membership)
	return &membership, err
}

func (s *MembershipStorage) ListByClub(ctx context.Context, clubID int64) ([]entity.Membership, error) {
	var memberships []entity.Membership
	err := s.client.Get(ctx, "/membresias/club/"+strconv.FormatInt(clubID, 10), nil, &memberships)
	return memberships, err
}

func (s *MembershipStorage) SetStatus(ctx context.Context, id int64, status entity.MembershipStatus) error {
	params := url.Values{}
	params.Set("estado", string(status))
	return s.client.Patch(ctx, "/membresias/"+strconv.FormatInt(id, 10)+"/estado", params, nil, nil)
}

func (s *MembershipStorage) SetTier(ctx context.Context, id, tierID int64) error {
	params := url.Values{}
	params.Set("nivelId", strconv.FormatInt(tierID, 10))
	return s.client.Patch(ctx, "/membresias/"+strconv.FormatInt(id, 10)+"/nivel", params, nil, nil)
}

func (s *MembershipStorage) SetPoints(ctx context.Context, id int64, points int) error {
	params := url.Values{}
	params.Set("puntos", strconv.Itoa(points))
	return s.client.Patch(ctx, "/membresias/"+strconv.FormatInt(id, 10)+"/puntos", params, nil, nil)
}
