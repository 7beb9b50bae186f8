package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type MembershipStorage interface {
	Get(ctx context.Context, id int64) (*entity.Membership, error)
	GetByUser(ctx context.Context, userID int64) (*entity.Membership, error)
	ListByClub(ctx context.Context, clubID int64) ([]entity.Membership, error)
	SetStatus(ctx context.Context, id int64, status entity.MembershipStatus) error
	SetTier(ctx context.Context, id, tierID int64) error
	SetPoints(ctx context.Context, id int64, points int) error
}

type MembershipService struct {
	storage MembershipStorage
}

func NewMembershipService(storage MembershipStorage) *MembershipService {
	return &MembershipService{
		storage: storage,
	}
}

func (s *MembershipService) Get(ctx context.Context, id int64) (*entity.Membership, error) {
	return s.storage.Get(ctx, id)
}

func (s *MembershipService) GetByUser(ctx context.Context, userID int64) (*entity.Membership, error) {
	return s.storage.GetByUser(ctx, userID)
}

func (s *MembershipService) ListByClub(ctx context.Context, clubID int64) ([]entity.Membership, error) {
	return s.storage.ListByClub(ctx, clubID)
}

func (s *MembershipService) SetStatus(ctx context.Context, id int64, status entity.MembershipStatus) error {
	return s.storage.SetStatus(ctx, id, status)
}

func (s *MembershipService) SetTier(ctx context.Context, id, tierID int64) error {
	return s.storage.SetTier(ctx, id, tierID)
}

func (s *MembershipService) SetPoints(ctx context.Context, id int64, points int) error {
	return s.storage.SetPoints(ctx, id, points)
}
