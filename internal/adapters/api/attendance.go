package api

import (
	"context"
	"strconv"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type AttendanceStorage struct {
	client *Client
}

func NewAttendanceStorage(client *Client) *AttendanceStorage {
	return &AttendanceStorage{
		client: client,
	}
}

func (s *AttendanceStorage) List(ctx context.Context) ([]entity.Attendance, error) {
	var attendances []entity.Attendance
	err := s.client.Get(ctx, "/asistencias", nil, &attendances)
	return attendances, err
}

func (s *AttendanceStorage) ListByMember(ctx context.Context, memberID int64) ([]entity.Attendance, error) {
	var attendances []entity.Attendance
	err := s.client.Get(ctx, "/asistencias/socio/"+strconv.FormatInt(memberID, 10), nil, &attendances)
	return attendances, err
}

func (s *AttendanceStorage) ListByClub(ctx context.Context, clubID int64) ([]entity.Attendance, error) {
	var attendances []entity.Attendance
	err := s.client.Get(ctx, "/asistencias/club/"+strconv.FormatInt(clubID, 10), nil, &attendances)
	return attendances, err
}
