package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type NotificationStorage interface {
	Send(ctx context.Context, notification *entity.Notification, hubID, clubID, userID int64) error
	History(ctx context.Context) ([]entity.Notification, error)
	HistoryByUser(ctx context.Context, userID int64) ([]entity.Notification, error)
	HistoryByHub(ctx context.Context, hubID int64) ([]entity.Notification, error)
	HistoryByClub(ctx context.Context, clubID int64) ([]entity.Notification, error)
}

type NotificationService struct {
	storage NotificationStorage
}

func NewNotificationService(storage NotificationStorage) *NotificationService {
	return &NotificationService{
		storage: storage,
	}
}

// Send maps the scope onto the backend's target params: GLOBAL sends no
// target, HUB and CLUB send exactly one id.
func (s *NotificationService) Send(ctx context.Context, notification *entity.Notification) error {
	var hubID, clubID int64
	switch notification.Scope {
	case entity.ScopeHub:
		hubID = notification.HubID
	case entity.ScopeClub:
		clubID = notification.ClubID
	}
	return s.storage.Send(ctx, notification, hubID, clubID, 0)
}

func (s *NotificationService) History(ctx context.Context) ([]entity.Notification, error) {
	return s.storage.History(ctx)
}

func (s *NotificationService) HistoryByUser(ctx context.Context, userID int64) ([]entity.Notification, error) {
	return s.storage.HistoryByUser(ctx, userID)
}

func (s *NotificationService) HistoryByHub(ctx context.Context, hubID int64) ([]entity.Notification, error) {
	return s.storage.HistoryByHub(ctx, hubID)
}

func (s *NotificationService) HistoryByClub(ctx context.Context, clubID int64) ([]entity.Notification, error) {
	return s.storage.HistoryByClub(ctx, clubID)
}
