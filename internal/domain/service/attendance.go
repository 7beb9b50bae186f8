package service

import (
	"context"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type AttendanceStorage interface {
	List(ctx context.Context) ([]entity.Attendance, error)
	ListByMember(ctx context.Context, memberID int64) ([]entity.Attendance, error)
	ListByClub(ctx context.Context, clubID int64) ([]entity.Attendance, error)
}

type AttendanceService struct {
	storage AttendanceStorage
}

func NewAttendanceService(storage AttendanceStorage) *AttendanceService {
	return &AttendanceService{
		storage: storage,
	}
}

func (s *AttendanceService) List(ctx context.Context) ([]entity.Attendance, error) {
	return s.storage.List(ctx)
}

func (s *AttendanceService) ListByMember(ctx context.Context, memberID int64) ([]entity.Attendance, error) {
	return s.storage.ListByMember(ctx, memberID)
}

func (s *AttendanceService) ListByClub(ctx context.Context, clubID int64) ([]entity.Attendance, error) {
	return s.storage.ListByClub(ctx, clubID)
}
