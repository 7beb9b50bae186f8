package service

import (
	"context"
	"strings"

	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type ClubStorage interface {
	List(ctx context.Context, hubID int64) ([]entity.Club, error)
	Get(ctx context.Context, id int64) (*entity.Club, error)
	Create(ctx context.Context, club *entity.Club, hubID, hostID int64) (*entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64, reason string) error
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
}

type ClubService struct {
	storage ClubStorage
}

func NewClubService(storage ClubStorage) *ClubService {
	return &ClubService{
		storage: storage,
	}
}

func (s *ClubService) List(ctx context.Context, hubID int64) ([]entity.Club, error) {
	return s.storage.List(ctx, hubID)
}

// ListActive filters the list down to approved clubs (report scoping and
// pickers only offer active clubs).
func (s *ClubService) ListActive(ctx context.Context) ([]entity.Club, error) {
	clubs, err := s.storage.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	active := make([]entity.Club, 0, len(clubs))
	for _, club := range clubs {
		if club.Status == entity.ClubActive {
			active = append(active, club)
		}
	}
	return active, nil
}

func (s *ClubService) Get(ctx context.Context, id int64) (*entity.Club, error) {
	return s.storage.Get(ctx, id)
}

func (s *ClubService) Create(ctx context.Context, club *entity.Club, hubID, hostID int64) (*entity.Club, error) {
	return s.storage.Create(ctx, club, hubID, hostID)
}

func (s *ClubService) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	return s.storage.Update(ctx, club)
}

func (s *ClubService) Approve(ctx context.Context, id int64) error {
	return s.storage.Approve(ctx, id)
}

// Reject refuses empty reasons before touching the backend.
func (s *ClubService) Reject(ctx context.Context, id int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errorz.ErrEmptyRejectReason
	}
	return s.storage.Reject(ctx, id, reason)
}

func (s *ClubService) Activate(ctx context.Context, id int64) error {
	return s.storage.Activate(ctx, id)
}

func (s *ClubService) Deactivate(ctx context.Context, id int64) error {
	return s.storage.Deactivate(ctx, id)
}
