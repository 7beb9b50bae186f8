package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type reportClubsFake struct {
	active []entity.Club
	get    func(id int64) (*entity.Club, error)
}

func (f *reportClubsFake) ListActive(context.Context) ([]entity.Club, error) {
	return f.active, nil
}

func (f *reportClubsFake) Get(_ context.Context, id int64) (*entity.Club, error) {
	if f.get != nil {
		return f.get(id)
	}
	return &entity.Club{ID: id, Name: "Club de prueba"}, nil
}

type reportMembershipsFake struct {
	mu      sync.Mutex
	queried []int64
	byClub  map[int64][]entity.Membership
	err     error
}

func (f *reportMembershipsFake) ListByClub(_ context.Context, clubID int64) ([]entity.Membership, error) {
	f.mu.Lock()
	f.queried = append(f.queried, clubID)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.byClub[clubID], nil
}

type reportOrdersFake struct {
	orders []entity.Order
}

func (f *reportOrdersFake) List(context.Context) ([]entity.Order, error) {
	return f.orders, nil
}

func (f *reportOrdersFake) ListByClub(context.Context, int64) ([]entity.Order, error) {
	return f.orders, nil
}

type reportAttendancesFake struct {
	attendances []entity.Attendance
	err         error
}

func (f *reportAttendancesFake) List(context.Context) ([]entity.Attendance, error) {
	return f.attendances, f.err
}

func (f *reportAttendancesFake) ListByClub(context.Context, int64) ([]entity.Attendance, error) {
	return f.attendances, f.err
}

type reportExportsFake struct {
	data []byte
	err  error

	kind     string
	dateFrom string
	dateTo   string
	clubID   int64
}

func (f *reportExportsFake) ExportPDF(_ context.Context, kind, dateFrom, dateTo string, clubID int64) ([]byte, error) {
	f.kind, f.dateFrom, f.dateTo, f.clubID = kind, dateFrom, dateTo, clubID
	return f.data, f.err
}

var fileNamePattern = regexp.MustCompile(`^reporte_[a-z]+_\d+\.pdf$`)

func TestReportServiceMembershipsFansOutOverActiveClubs(t *testing.T) {
	memberships := &reportMembershipsFake{byClub: map[int64][]entity.Membership{
		1: {{ID: 10, UserName: "Ana", ClubName: "Centro"}},
		2: {{ID: 20, UserName: "Luis", ClubName: "Norte"}},
	}}
	service := NewReportService(
		&reportClubsFake{active: []entity.Club{
			{ID: 1, Name: "Centro", Status: entity.ClubActive},
			{ID: 2, Name: "Norte", Status: entity.ClubActive},
		}},
		memberships, &reportOrdersFake{}, &reportAttendancesFake{}, &reportExportsFake{},
	)

	report, err := service.Memberships(context.Background(), 0)

	require.NoError(t, err)
	assert.Regexp(t, fileNamePattern, report.FileName)
	assert.True(t, bytesHavePDFHeader(report.Data))
	assert.ElementsMatch(t, []int64{1, 2}, memberships.queried)
}

func TestReportServiceMembershipsSingleClub(t *testing.T) {
	memberships := &reportMembershipsFake{byClub: map[int64][]entity.Membership{
		7: {{ID: 70, UserName: "Ana", ClubName: "Centro"}},
	}}
	service := NewReportService(
		&reportClubsFake{}, memberships, &reportOrdersFake{}, &reportAttendancesFake{}, &reportExportsFake{},
	)

	report, err := service.Memberships(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, memberships.queried)
	assert.True(t, bytesHavePDFHeader(report.Data))
}

func TestReportServiceMembershipsFetchFailure(t *testing.T) {
	fetchErr := errors.New("backend caído")
	service := NewReportService(
		&reportClubsFake{active: []entity.Club{{ID: 1, Name: "Centro"}}},
		&reportMembershipsFake{err: fetchErr},
		&reportOrdersFake{}, &reportAttendancesFake{}, &reportExportsFake{},
	)

	report, err := service.Memberships(context.Background(), 0)

	assert.ErrorIs(t, err, fetchErr)
	assert.Nil(t, report, "no document on a failed fetch")
}

func TestReportServiceOrders(t *testing.T) {
	service := NewReportService(
		&reportClubsFake{},
		&reportMembershipsFake{},
		&reportOrdersFake{orders: []entity.Order{
			{ID: 1, ClubName: "Centro", DesiredSchedule: "10:00", ConsumptionType: "LOCAL", Status: "ENTREGADO", OrderedAt: "2026-03-01"},
		}},
		&reportAttendancesFake{}, &reportExportsFake{},
	)

	report, err := service.Orders(context.Background(), 0)

	require.NoError(t, err)
	assert.Contains(t, report.FileName, "reporte_pedidos_")
	assert.True(t, bytesHavePDFHeader(report.Data))
}

func TestReportServiceAttendanceFetchFailure(t *testing.T) {
	fetchErr := errors.New("backend caído")
	service := NewReportService(
		&reportClubsFake{}, &reportMembershipsFake{}, &reportOrdersFake{},
		&reportAttendancesFake{err: fetchErr}, &reportExportsFake{},
	)

	report, err := service.Attendance(context.Background(), 0)

	assert.ErrorIs(t, err, fetchErr)
	assert.Nil(t, report)
}

func TestReportServiceExportPassthrough(t *testing.T) {
	exports := &reportExportsFake{data: []byte("%PDF-1.4 remoto")}
	service := NewReportService(
		&reportClubsFake{}, &reportMembershipsFake{}, &reportOrdersFake{}, &reportAttendancesFake{}, exports,
	)

	report, err := service.Export(context.Background(), "pedidos", "2026-01-01", "2026-01-31", 9)

	require.NoError(t, err)
	assert.Equal(t, "pedidos", exports.kind)
	assert.Equal(t, "2026-01-01", exports.dateFrom)
	assert.Equal(t, "2026-01-31", exports.dateTo)
	assert.Equal(t, int64(9), exports.clubID)
	assert.Equal(t, []byte("%PDF-1.4 remoto"), report.Data)
	assert.Contains(t, report.FileName, "reporte_pedidos_")
}

func TestReportServiceExportClubsComparative(t *testing.T) {
	exports := &reportExportsFake{data: []byte("%PDF-1.4 comparativo")}
	service := NewReportService(
		&reportClubsFake{}, &reportMembershipsFake{}, &reportOrdersFake{}, &reportAttendancesFake{}, exports,
	)

	report, err := service.Export(context.Background(), "clubes", "2026-01-01", "2026-06-30", 0)

	require.NoError(t, err)
	assert.Equal(t, "clubes", exports.kind)
	assert.Equal(t, int64(0), exports.clubID)
	assert.Regexp(t, fileNamePattern, report.FileName)
	assert.Contains(t, report.FileName, "reporte_clubes_")
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2026-03-05", "05/03/2026"},
		{"2026-03-05T14:30:00", "05/03/2026"},
		{"2026-03-05T14:30:00Z", "05/03/2026"},
		{"", ""},
		{"ayer", "ayer"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDate(tt.value), "value %q", tt.value)
	}
}

func bytesHavePDFHeader(data []byte) bool {
	return len(data) > 4 && string(data[:5]) == "%PDF-"
}
