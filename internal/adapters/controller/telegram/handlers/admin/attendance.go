package admin

import (
	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

// attendanceList is read-only: a paged text listing of visits.
func (h Handler) attendanceList(c tele.Context) error {
	page := parsePage(c.Callback().Data)
	h.logger.Infof("(user: %d) edit attendance list (page=%d)", c.Sender().ID, page)

	attendances, err := h.attendanceService.List(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get attendances: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "mainMenu:backRow"))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	h.pager(c, markup, rows, "admin:attendance", page, len(attendances))

	return c.Edit(
		h.layout.Text(c, "attendance_list", struct {
			Total int
			Items []entity.Attendance
		}{
			Total: len(attendances),
			Items: pageOf(attendances, page),
		}),
		markup,
	)
}
