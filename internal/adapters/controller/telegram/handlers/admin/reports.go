package admin

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/nlypage/intele/collector"

	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/service"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

func (h Handler) reportsMenu(c tele.Context) error {
	h.logger.Infof("(user: %d) edit reports menu", c.Sender().ID)
	return c.Edit(
		h.layout.Text(c, "reports_menu_text"),
		h.layout.Markup(c, "admin:reports:menu"),
	)
}

func (h Handler) membershipReportPicker(c tele.Context) error {
	return h.reportClubPicker(c, "membresias", "admin:reports:memberships_all", "admin:reports:memberships_club")
}

func (h Handler) orderReportPicker(c tele.Context) error {
	return h.reportClubPicker(c, "pedidos", "admin:reports:orders_all", "admin:reports:orders_club")
}

func (h Handler) attendanceReportPicker(c tele.Context) error {
	return h.reportClubPicker(c, "asistencias", "admin:reports:attendance_all", "admin:reports:attendance_club")
}

// reportClubPicker offers the whole-platform report, a single active club,
// or a backend-rendered export by date range.
func (h Handler) reportClubPicker(c tele.Context, kind, allButton, clubButton string) error {
	backMarkup := h.layout.Markup(c, "admin:reports:backRow")

	clubs, err := h.clubService.ListActive(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get active clubs: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, allButton)))
	for _, club := range clubs {
		rows = append(rows, markup.Row(*h.layout.Button(c, clubButton, struct {
			ID   int64
			Name string
		}{
			ID:   club.ID,
			Name: club.Name,
		})))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:reports:export", kind)))
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:reports:back")))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "pick_report_scope"),
		markup,
	)
}

func (h Handler) membershipReport(c tele.Context) error {
	return h.generateReport(c, "membresias", h.reportService.Memberships)
}

func (h Handler) orderReport(c tele.Context) error {
	return h.generateReport(c, "pedidos", h.reportService.Orders)
}

func (h Handler) attendanceReport(c tele.Context) error {
	return h.generateReport(c, "asistencias", h.reportService.Attendance)
}

// generateReport renders the PDF and delivers it as a document. Empty
// callback data means the unfiltered report.
func (h Handler) generateReport(
	c tele.Context,
	kind string,
	build func(ctx context.Context, clubID int64) (*service.Report, error),
) error {
	clubID, _ := strconv.ParseInt(strings.TrimSpace(c.Callback().Data), 10, 64)
	h.logger.Infof("(user: %d) generate report (kind=%s, club_id=%d)", c.Sender().ID, kind, clubID)

	backMarkup := h.layout.Markup(c, "admin:reports:backRow")
	_ = c.Edit(h.layout.Text(c, "generating_report"), backMarkup)

	report, err := build(h.ctx(c), clubID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while generate report (kind=%s): %v", c.Sender().ID, kind, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) report generated (file=%s, bytes=%d)", c.Sender().ID, report.FileName, len(report.Data))
	return c.Send(&tele.Document{
		File:     tele.FromReader(bytes.NewReader(report.Data)),
		FileName: report.FileName,
		MIME:     "application/pdf",
	}, backMarkup)
}

// exportReport fetches a backend-rendered PDF for a date range. Callback
// data is the report kind.
func (h Handler) exportReport(c tele.Context) error {
	kind := strings.TrimSpace(c.Callback().Data)
	if kind == "" {
		return errorz.ErrInvalidCallbackData
	}
	h.logger.Infof("(user: %d) export report request (kind=%s)", c.Sender().ID, kind)

	backMarkup := h.layout.Markup(c, "admin:reports:backRow")

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_report_date_from"), backMarkup)
	dateFrom, canceled := h.collectInput(c, inputCollector, "input_report_date_from", "invalid_report_date", backMarkup, reportDate)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_report_date_to"), backMarkup)
	dateTo, canceled := h.collectInput(c, inputCollector, "input_report_date_to", "invalid_report_date", backMarkup, reportDate)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_report_club_id"), backMarkup)
	clubIDText, canceled := h.collectInput(c, inputCollector, "input_report_club_id", "invalid_numeric_id", backMarkup, optional(validator.NumericID))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	clubID, _ := strconv.ParseInt(skipValue(clubIDText), 10, 64)

	report, err := h.reportService.Export(h.ctx(c), kind, dateFrom, dateTo, clubID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while export report (kind=%s): %v", c.Sender().ID, kind, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) report exported (file=%s, bytes=%d)", c.Sender().ID, report.FileName, len(report.Data))
	return c.Send(&tele.Document{
		File:     tele.FromReader(bytes.NewReader(report.Data)),
		FileName: report.FileName,
		MIME:     "application/pdf",
	}, backMarkup)
}

// reportDate accepts backend date-range bounds ("2006-01-02", past allowed).
func reportDate(value string, _ map[string]interface{}) bool {
	_, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	return err == nil
}
