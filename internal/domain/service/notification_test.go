package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type NotificationStorageMock struct{ mock.Mock }

func (m *NotificationStorageMock) Send(ctx context.Context, notification *entity.Notification, hubID, clubID, userID int64) error {
	return m.Called(ctx, notification, hubID, clubID, userID).Error(0)
}

func (m *NotificationStorageMock) History(ctx context.Context) ([]entity.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

func (m *NotificationStorageMock) HistoryByUser(ctx context.Context, userID int64) ([]entity.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

func (m *NotificationStorageMock) HistoryByHub(ctx context.Context, hubID int64) ([]entity.Notification, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

func (m *NotificationStorageMock) HistoryByClub(ctx context.Context, clubID int64) ([]entity.Notification, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

func TestNotificationServiceHistoryByTarget(t *testing.T) {
	history := []entity.Notification{{ID: 1, Title: "Aviso"}}

	storage := new(NotificationStorageMock)
	storage.On("HistoryByHub", mock.Anything, int64(5)).Return(history, nil)
	storage.On("HistoryByClub", mock.Anything, int64(9)).Return(history, nil)
	service := NewNotificationService(storage)

	byHub, err := service.HistoryByHub(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, history, byHub)

	byClub, err := service.HistoryByClub(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, history, byClub)
	storage.AssertExpectations(t)
}

func TestNotificationServiceSendScopeTargets(t *testing.T) {
	tests := []struct {
		name       string
		scope      entity.NotificationScope
		hubID      int64
		clubID     int64
		wantHubID  int64
		wantClubID int64
	}{
		{"global sends no target", entity.ScopeGlobal, 3, 4, 0, 0},
		{"hub sends only the hub id", entity.ScopeHub, 3, 4, 3, 0},
		{"club sends only the club id", entity.ScopeClub, 3, 4, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := new(NotificationStorageMock)
			notification := &entity.Notification{
				Title:   "Aviso",
				Message: "Texto del aviso",
				Scope:   tt.scope,
				HubID:   tt.hubID,
				ClubID:  tt.clubID,
			}
			storage.On("Send", mock.Anything, notification, tt.wantHubID, tt.wantClubID, int64(0)).Return(nil)
			service := NewNotificationService(storage)

			err := service.Send(context.Background(), notification)

			require.NoError(t, err)
			storage.AssertExpectations(t)
		})
	}
}
