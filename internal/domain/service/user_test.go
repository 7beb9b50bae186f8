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

type UserStorageMock struct{ mock.Mock }

func (m *UserStorageMock) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *UserStorageMock) Get(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserStorageMock) Profile(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserStorageMock) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestUserServiceDeactivateAdminLocked(t *testing.T) {
	storage := new(UserStorageMock)
	storage.On("Get", mock.Anything, int64(1)).Return(&entity.User{
		ID:       1,
		Name:     "Laura",
		RoleName: entity.RoleAdmin,
		Status:   entity.UserActive,
	}, nil)
	service := NewUserService(storage)

	err := service.Deactivate(context.Background(), 1)

	assert.ErrorIs(t, err, errorz.ErrAdminLocked)
	storage.AssertNotCalled(t, "Deactivate")
}

func TestUserServiceDeactivateRegularUser(t *testing.T) {
	storage := new(UserStorageMock)
	storage.On("Get", mock.Anything, int64(2)).Return(&entity.User{
		ID:       2,
		Name:     "Pedro",
		RoleName: "SOCIO",
		Status:   entity.UserActive,
	}, nil)
	storage.On("Deactivate", mock.Anything, int64(2)).Return(nil)
	service := NewUserService(storage)

	err := service.Deactivate(context.Background(), 2)

	require.NoError(t, err)
	storage.AssertExpectations(t)
}
