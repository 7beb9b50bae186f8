package admin

import (
	"strconv"
	"strings"

	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

type ticketCallback struct {
	ID   int64
	Page string
}

func (h Handler) ticketsList(c tele.Context) error {
	page := parsePage(c.Callback().Data)
	h.logger.Infof("(user: %d) edit tickets list (page=%d)", c.Sender().ID, page)

	tickets, err := h.supportService.List(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get tickets: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "mainMenu:backRow"))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	for _, ticket := range pageOf(tickets, page) {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:tickets:ticket", struct {
			ID      int64
			Subject string
			Status  entity.TicketStatus
			Page    int
		}{
			ID:      ticket.ID,
			Subject: ticket.Subject,
			Status:  ticket.Status,
			Page:    page,
		})))
	}
	h.pager(c, markup, rows, "admin:tickets", page, len(tickets))

	return c.Edit(
		h.layout.Text(c, "tickets_list", len(tickets)),
		markup,
	)
}

func (h Handler) ticketMenu(c tele.Context) error {
	ticketID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	return h.ticketView(c, ticketID, page)
}

func (h Handler) ticketView(c tele.Context, ticketID int64, page string) error {
	h.logger.Infof("(user: %d) edit ticket menu (ticket_id=%d)", c.Sender().ID, ticketID)

	ticket, err := h.supportService.Get(h.ctx(c), ticketID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get ticket: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:tickets:backRow", struct{ Page string }{Page: page}))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:ticket:respond", ticketCallback{ID: ticketID, Page: page})))
	// Status can move between any two states.
	var statusRow tele.Row
	for _, status := range entity.TicketStatuses {
		if status == ticket.Status {
			continue
		}
		statusRow = append(statusRow, *h.layout.Button(c, "admin:ticket:status", struct {
			ID     int64
			Status entity.TicketStatus
			Page   string
		}{
			ID:     ticketID,
			Status: status,
			Page:   page,
		}))
	}
	rows = append(rows, statusRow)
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:tickets:back", struct{ Page string }{Page: page})))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "admin_ticket_menu_text", ticket),
		markup,
	)
}

func (h Handler) respondTicket(c tele.Context) error {
	ticketID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) respond ticket request (ticket_id=%d)", c.Sender().ID, ticketID)

	backMarkup := h.layout.Markup(c, "admin:ticket:backRow", ticketCallback{ID: ticketID, Page: page})

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_ticket_response"), backMarkup)
	response, canceled := h.collectInput(c, inputCollector, "input_ticket_response", "invalid_ticket_response", backMarkup, validator.TicketResponse)
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	if err = h.supportService.Respond(h.ctx(c), ticketID, response); err != nil {
		h.logger.Errorf("(user: %d) error while respond ticket: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) ticket responded (ticket_id=%d)", c.Sender().ID, ticketID)
	return c.Send(
		h.layout.Text(c, "ticket_responded"),
		backMarkup,
	)
}

func (h Handler) setTicketStatus(c tele.Context) error {
	parts := strings.Split(c.Callback().Data, " ")
	if len(parts) != 3 {
		return errorz.ErrInvalidCallbackData
	}
	ticketID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return errorz.ErrInvalidCallbackData
	}
	status := entity.TicketStatus(parts[1])
	page := parts[2]

	if !validator.TicketStatus(string(status), nil) {
		return errorz.ErrInvalidCallbackData
	}

	h.logger.Infof("(user: %d) set ticket status (ticket_id=%d, status=%s)", c.Sender().ID, ticketID, status)
	if err = h.supportService.SetStatus(h.ctx(c), ticketID, status); err != nil {
		h.logger.Errorf("(user: %d) error while set ticket status: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:tickets:backRow", struct{ Page string }{Page: page}))
	}
	return h.ticketView(c, ticketID, page)
}
