package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type ClubStorageMock struct{ mock.Mock }

func (m *ClubStorageMock) List(ctx context.Context, hubID int64) ([]entity.Club, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Club), args.Error(1)
}

func (m *ClubStorageMock) Get(ctx context.Context, id int64) (*entity.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Club), args.Error(1)
}

func (m *ClubStorageMock) Create(ctx context.Context, club *entity.Club, hubID, hostID int64) (*entity.Club, error) {
	args := m.Called(ctx, club, hubID, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Club), args.Error(1)
}

func (m *ClubStorageMock) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	args := m.Called(ctx, club)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Club), args.Error(1)
}

func (m *ClubStorageMock) Approve(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ClubStorageMock) Reject(ctx context.Context, id int64, reason string) error {
	return m.Called(ctx, id, reason).Error(0)
}

func (m *ClubStorageMock) Activate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ClubStorageMock) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestClubServiceRejectEmptyReason(t *testing.T) {
	storage := new(ClubStorageMock)
	service := NewClubService(storage)

	err := service.Reject(context.Background(), 5, "   ")

	assert.ErrorIs(t, err, errorz.ErrEmptyRejectReason)
	storage.AssertNotCalled(t, "Reject")
}

func TestClubServiceRejectPassesReason(t *testing.T) {
	storage := new(ClubStorageMock)
	storage.On("Reject", mock.Anything, int64(5), "documentación incompleta").Return(nil)
	service := NewClubService(storage)

	err := service.Reject(context.Background(), 5, "documentación incompleta")

	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestClubServiceListActive(t *testing.T) {
	storage := new(ClubStorageMock)
	storage.On("List", mock.Anything, int64(0)).Return([]entity.Club{
		{ID: 1, Name: "Centro", Status: entity.ClubActive},
		{ID: 2, Name: "Pendiente", Status: entity.ClubPending},
		{ID: 3, Name: "Norte", Status: entity.ClubActive},
		{ID: 4, Name: "Cerrado", Status: entity.ClubInactive},
	}, nil)
	service := NewClubService(storage)

	clubs, err := service.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, int64(1), clubs[0].ID)
	assert.Equal(t, int64(3), clubs[1].ID)
}
