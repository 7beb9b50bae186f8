package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/klauspost/lctime"
	"golang.org/x/sync/errgroup"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/pdf"
)

type reportClubStorage interface {
	ListActive(ctx context.Context) ([]entity.Club, error)
	Get(ctx context.Context, id int64) (*entity.Club, error)
}

type reportMembershipStorage interface {
	ListByClub(ctx context.Context, clubID int64) ([]entity.Membership, error)
}

type reportOrderStorage interface {
	List(ctx context.Context) ([]entity.Order, error)
	ListByClub(ctx context.Context, clubID int64) ([]entity.Order, error)
}

type reportAttendanceStorage interface {
	List(ctx context.Context) ([]entity.Attendance, error)
	ListByClub(ctx context.Context, clubID int64) ([]entity.Attendance, error)
}

type reportExportStorage interface {
	ExportPDF(ctx context.Context, kind, dateFrom, dateTo string, clubID int64) ([]byte, error)
}

// Report is a rendered PDF ready to be sent as a document.
type Report struct {
	FileName string
	Data     []byte
}

// ReportService renders the three tabular reports locally and proxies the
// backend's date-ranged exports. If any fetch fails no document is produced.
type ReportService struct {
	clubs       reportClubStorage
	memberships reportMembershipStorage
	orders      reportOrderStorage
	attendances reportAttendanceStorage
	exports     reportExportStorage
}

func NewReportService(
	clubs reportClubStorage,
	memberships reportMembershipStorage,
	orders reportOrderStorage,
	attendances reportAttendanceStorage,
	exports reportExportStorage,
) *ReportService {
	return &ReportService{
		clubs:       clubs,
		memberships: memberships,
		orders:      orders,
		attendances: attendances,
		exports:     exports,
	}
}

// Memberships builds the membership report. The backend has no global
// membership listing, so with clubID 0 the service fans out over every
// active club and flattens the results in club order.
func (s *ReportService) Memberships(ctx context.Context, clubID int64) (*Report, error) {
	var (
		memberships []entity.Membership
		filter      string
	)
	if clubID > 0 {
		club, err := s.clubs.Get(ctx, clubID)
		if err != nil {
			return nil, err
		}
		memberships, err = s.memberships.ListByClub(ctx, clubID)
		if err != nil {
			return nil, err
		}
		filter = "Club: " + club.Name
	} else {
		clubs, err := s.clubs.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		perClub := make([][]entity.Membership, len(clubs))
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(5)
		for i, club := range clubs {
			i, club := i, club
			g.Go(func() error {
				list, err := s.memberships.ListByClub(gctx, club.ID)
				if err != nil {
					return err
				}
				mu.Lock()
				perClub[i] = list
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		for _, list := range perClub {
			memberships = append(memberships, list...)
		}
	}

	rows := make([][]string, 0, len(memberships))
	for _, m := range memberships {
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.UserName,
			m.ClubName,
			m.TierName,
			string(m.Status),
		})
	}

	return render("membresias", &pdf.Table{
		Title:       "Reporte de Membresías",
		GeneratedAt: time.Now(),
		Filter:      filter,
		Total:       fmt.Sprintf("Total de membresías: %d", len(rows)),
		Head:        []string{"ID", "Usuario", "Club", "Nivel", "Estado"},
		Rows:        rows,
	})
}

// Orders builds the orders report. Prices never appear on it.
func (s *ReportService) Orders(ctx context.Context, clubID int64) (*Report, error) {
	orders, filter, err := s.fetchOrders(ctx, clubID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			o.ClubName,
			o.DesiredSchedule,
			o.ConsumptionType,
			o.Status,
			formatDate(o.OrderedAt),
		})
	}

	return render("pedidos", &pdf.Table{
		Title:       "Reporte de Pedidos",
		GeneratedAt: time.Now(),
		Filter:      filter,
		Total:       fmt.Sprintf("Total de pedidos: %d", len(rows)),
		Head:        []string{"ID", "Club", "Horario", "Tipo", "Estado", "Fecha"},
		Rows:        rows,
	})
}

// Attendance builds the attendance report.
func (s *ReportService) Attendance(ctx context.Context, clubID int64) (*Report, error) {
	var (
		attendances []entity.Attendance
		filter      string
		err         error
	)
	if clubID > 0 {
		var club *entity.Club
		if club, err = s.clubs.Get(ctx, clubID); err != nil {
			return nil, err
		}
		filter = "Club: " + club.Name
		attendances, err = s.attendances.ListByClub(ctx, clubID)
	} else {
		attendances, err = s.attendances.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(attendances))
	for _, a := range attendances {
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.MemberName,
			a.ClubName,
			formatDate(a.Date),
			a.Time,
		})
	}

	return render("asistencias", &pdf.Table{
		Title:       "Reporte de Asistencias",
		GeneratedAt: time.Now(),
		Filter:      filter,
		Total:       fmt.Sprintf("Total de asistencias: %d", len(rows)),
		Head:        []string{"ID", "Socio", "Club", "Fecha", "Hora"},
		Rows:        rows,
	})
}

// Export fetches a backend-rendered PDF for a date range instead of
// composing one locally.
func (s *ReportService) Export(ctx context.Context, kind, dateFrom, dateTo string, clubID int64) (*Report, error) {
	data, err := s.exports.ExportPDF(ctx, kind, dateFrom, dateTo, clubID)
	if err != nil {
		return nil, err
	}
	return &Report{FileName: fileName(kind), Data: data}, nil
}

func (s *ReportService) fetchOrders(ctx context.Context, clubID int64) ([]entity.Order, string, error) {
	if clubID > 0 {
		club, err := s.clubs.Get(ctx, clubID)
		if err != nil {
			return nil, "", err
		}
		orders, err := s.orders.ListByClub(ctx, clubID)
		if err != nil {
			return nil, "", err
		}
		return orders, "Club: " + club.Name, nil
	}
	orders, err := s.orders.List(ctx)
	return orders, "", err
}

func render(kind string, table *pdf.Table) (*Report, error) {
	data, err := table.Render()
	if err != nil {
		return nil, err
	}
	return &Report{FileName: fileName(kind), Data: data}, nil
}

func fileName(kind string) string {
	return fmt.Sprintf("reporte_%s_%d.pdf", kind, time.Now().UnixMilli())
}

// formatDate normalizes the backend's date strings to dd/mm/yyyy. Unparsable
// values pass through untouched rather than failing the whole report.
func formatDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			if out, err := lctime.StrftimeLoc("es_ES", "%d/%m/%Y", t); err == nil {
				return out
			}
			return t.Format("02/01/2006")
		}
	}
	return value
}
