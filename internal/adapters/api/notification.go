package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type NotificationStorage struct {
	client *Client
}

func NewNotificationStorage(client *Client) *NotificationStorage {
	return &NotificationStorage{
		client: client,
	}
}

// Send posts a notification; zero-valued scope ids mean a global send.
func (s *NotificationStorage) Send(ctx context.Context, notification *entity.Notification, hubID, clubID, userID int64) error {
	params := url.Values{}
	if hubID > 0 {
		params.Set("hubId", strconv.FormatInt(hubID, 10))
	}
	if clubID > 0 {
		params.Set("clubId", strconv.FormatInt(clubID, 10))
	}
	if userID > 0 {
		params.Set("usuarioId", strconv.FormatInt(userID, 10))
	}
	return s.client.Post(ctx, "/notificaciones/enviar", params, notification, nil)
}

func (s *NotificationStorage) History(ctx context.Context) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := s.client.Get(ctx, "/notificaciones", nil, &notifications)
	return notifications, err
}

func (s *NotificationStorage) HistoryByUser(ctx context.Context, userID int64) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := s.client.Get(ctx, "/notificaciones/usuario/"+strconv.FormatInt(userID, 10), nil, &notifications)
	return notifications, err
}

func (s *NotificationStorage) HistoryByHub(ctx context.Context, hubID int64) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := s.client.Get(ctx, "/notificaciones/hub/"+strconv.FormatInt(hubID, 10), nil, &notifications)
	return notifications, err
}

func (s *NotificationStorage) HistoryByClub(ctx context.Context, clubID int64) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := s.client.Get(ctx, "/notificaciones/club/"+strconv.FormatInt(clubID, 10), nil, &notifications)
	return notifications, err
}
