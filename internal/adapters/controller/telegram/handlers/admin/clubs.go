package admin

import (
	"strconv"

	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

type clubCallback struct {
	ID   int64
	Page string
}

func (h Handler) clubsList(c tele.Context) error {
	page := parsePage(c.Callback().Data)
	h.logger.Infof("(user: %d) edit clubs list (page=%d)", c.Sender().ID, page)

	clubs, err := h.clubService.List(h.ctx(c), 0)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get clubs: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "mainMenu:backRow"))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:clubs:create", struct{ Page int }{Page: page})))
	for _, club := range pageOf(clubs, page) {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:clubs:club", struct {
			ID     int64
			Name   string
			Status entity.ClubStatus
			Page   int
		}{
			ID:     club.ID,
			Name:   club.Name,
			Status: club.Status,
			Page:   page,
		})))
	}
	h.pager(c, markup, rows, "admin:clubs", page, len(clubs))

	return c.Edit(
		h.layout.Text(c, "clubs_list", len(clubs)),
		markup,
	)
}

func (h Handler) clubMenu(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit club menu (club_id=%d)", c.Sender().ID, clubID)

	club, err := h.clubService.Get(h.ctx(c), clubID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get club: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:clubs:backRow", struct{ Page string }{Page: page}))
	}

	data := clubCallback{ID: clubID, Page: page}
	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:club:edit", data)))
	switch club.Status {
	case entity.ClubPending:
		rows = append(rows, markup.Row(
			*h.layout.Button(c, "admin:club:approve", data),
			*h.layout.Button(c, "admin:club:reject", data),
		))
	case entity.ClubActive:
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:club:deactivate", data)))
	case entity.ClubInactive:
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:club:activate", data)))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:club:members", data)))
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:clubs:back", struct{ Page string }{Page: page})))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "admin_club_menu_text", club),
		markup,
	)
}

func (h Handler) createClub(c tele.Context) error {
	page := 0
	if c.Callback().Data != "" {
		page = parsePage(c.Callback().Data)
	}
	h.logger.Infof("(user: %d) create club request", c.Sender().ID)

	backMarkup := h.layout.Markup(c, "admin:clubs:backRow", struct{ Page string }{Page: strconv.Itoa(page)})

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_club_name"), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_club_name", "invalid_club_name", backMarkup, validator.ClubName)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_club_address"), backMarkup)
	address, canceled := h.collectInput(c, inputCollector, "input_club_address", "invalid_club_address", backMarkup, validator.ClubAddress)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_club_schedule"), backMarkup)
	schedule, canceled := h.collectInput(c, inputCollector, "input_club_schedule", "invalid_club_schedule", backMarkup, optional(validator.ClubSchedule))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_hub_id"), backMarkup)
	hubIDText, canceled := h.collectInput(c, inputCollector, "input_hub_id", "invalid_numeric_id", backMarkup, validator.NumericID)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_host_id"), backMarkup)
	hostIDText, canceled := h.collectInput(c, inputCollector, "input_host_id", "invalid_numeric_id", backMarkup, validator.NumericID)
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	// The whole form is validated once more at submit; nothing is sent to
	// the backend unless every field passes.
	if errs := validator.Validate(
		validator.Field{Name: "nombreClub", Value: name, Rules: []validator.Rule{{Check: validator.ClubName, Message: "invalid_club_name"}}},
		validator.Field{Name: "direccion", Value: address, Rules: []validator.Rule{{Check: validator.ClubAddress, Message: "invalid_club_address"}}},
		validator.Field{Name: "horario", Value: skipValue(schedule), Rules: []validator.Rule{{Check: validator.ClubSchedule, Message: "invalid_club_schedule"}}},
		validator.Field{Name: "hubId", Value: hubIDText, Rules: []validator.Rule{{Check: validator.NumericID, Message: "invalid_numeric_id"}}},
		validator.Field{Name: "anfitrionId", Value: hostIDText, Rules: []validator.Rule{{Check: validator.NumericID, Message: "invalid_numeric_id"}}},
	); len(errs) > 0 {
		h.logger.Warnf("(user: %d) club form rejected at submit: %v", c.Sender().ID, errs)
		return c.Send(h.layout.Text(c, "form_invalid"), backMarkup)
	}

	hubID, _ := strconv.ParseInt(hubIDText, 10, 64)
	hostID, _ := strconv.ParseInt(hostIDText, 10, 64)

	club, err := h.clubService.Create(h.ctx(c), &entity.Club{
		Name:     name,
		Address:  address,
		Schedule: skipValue(schedule),
	}, hubID, hostID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while create club: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) club created (club_id=%d)", c.Sender().ID, club.ID)
	return c.Send(
		h.layout.Text(c, "club_created", club),
		backMarkup,
	)
}

func (h Handler) editClub(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit club request (club_id=%d)", c.Sender().ID, clubID)

	backMarkup := h.layout.Markup(c, "admin:club:backRow", clubCallback{ID: clubID, Page: page})

	club, err := h.clubService.Get(h.ctx(c), clubID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get club: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_club_name_edit", club.Name), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_club_name_edit", "invalid_club_name", backMarkup, optional(validator.ClubName))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_club_address_edit", club.Address), backMarkup)
	address, canceled := h.collectInput(c, inputCollector, "input_club_address_edit", "invalid_club_address", backMarkup, optional(validator.ClubAddress))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_club_schedule_edit", club.Schedule), backMarkup)
	schedule, canceled := h.collectInput(c, inputCollector, "input_club_schedule_edit", "invalid_club_schedule", backMarkup, optional(validator.ClubSchedule))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	if name != skipToken {
		club.Name = name
	}
	if address != skipToken {
		club.Address = address
	}
	if schedule != skipToken {
		club.Schedule = schedule
	}

	updated, err := h.clubService.Update(h.ctx(c), club)
	if err != nil {
		h.logger.Errorf("(user: %d) error while update club: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) club updated (club_id=%d)", c.Sender().ID, updated.ID)
	return c.Send(
		h.layout.Text(c, "club_updated", updated),
		backMarkup,
	)
}

func (h Handler) approveClub(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	data := clubCallback{ID: clubID, Page: page}
	return c.Edit(
		h.layout.Text(c, "confirm_approve_club", clubID),
		h.layout.Markup(c, "admin:club:approveConfirm", data),
	)
}

func (h Handler) confirmApproveClub(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) approve club (club_id=%d)", c.Sender().ID, clubID)

	if err = h.clubService.Approve(h.ctx(c), clubID); err != nil {
		h.logger.Errorf("(user: %d) error while approve club: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:club:backRow", clubCallback{ID: clubID, Page: page}))
	}
	return h.clubMenu(c)
}

func (h Handler) rejectClub(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) reject club request (club_id=%d)", c.Sender().ID, clubID)

	backMarkup := h.layout.Markup(c, "admin:club:backRow", clubCallback{ID: clubID, Page: page})

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_reject_reason"), backMarkup)
	reason, canceled := h.collectInput(c, inputCollector, "input_reject_reason", "invalid_reject_reason", backMarkup, validator.RejectReason)
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	if err = h.clubService.Reject(h.ctx(c), clubID, reason); err != nil {
		h.logger.Errorf("(user: %d) error while reject club: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) club rejected (club_id=%d)", c.Sender().ID, clubID)
	return c.Send(
		h.layout.Text(c, "club_rejected"),
		backMarkup,
	)
}

func (h Handler) activateClub(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	return c.Edit(
		h.layout.Text(c, "confirm_activate_club", clubID),
		h.layout.Markup(c, "admin:club:activateConfirm", clubCallback{ID: clubID, Page: page}),
	)
}

func (h Handler) confirmActivateClub(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) activate club (club_id=%d)", c.Sender().ID, clubID)

	if err = h.clubService.Activate(h.ctx(c), clubID); err != nil {
		h.logger.Errorf("(user: %d) error while activate club: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:club:backRow", clubCallback{ID: clubID, Page: page}))
	}
	return h.clubMenu(c)
}

func (h Handler) deactivateClub(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	return c.Edit(
		h.layout.Text(c, "confirm_deactivate_club", clubID),
		h.layout.Markup(c, "admin:club:deactivateConfirm", clubCallback{ID: clubID, Page: page}),
	)
}

func (h Handler) confirmDeactivateClub(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) deactivate club (club_id=%d)", c.Sender().ID, clubID)

	if err = h.clubService.Deactivate(h.ctx(c), clubID); err != nil {
		h.logger.Errorf("(user: %d) error while deactivate club: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:club:backRow", clubCallback{ID: clubID, Page: page}))
	}
	return h.clubMenu(c)
}

func (h Handler) clubMembers(c tele.Context) error {
	clubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) club members (club_id=%d)", c.Sender().ID, clubID)

	backMarkup := h.layout.Markup(c, "admin:club:backRow", clubCallback{ID: clubID, Page: page})

	memberships, err := h.membershipService.ListByClub(h.ctx(c), clubID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get club members: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	for _, membership := range memberships {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:memberships:membership", struct {
			ID       int64
			UserName string
			Status   entity.MembershipStatus
			ClubID   int64
		}{
			ID:       membership.ID,
			UserName: membership.UserName,
			Status:   membership.Status,
			ClubID:   clubID,
		})))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:club:back", clubCallback{ID: clubID, Page: page})))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "club_members_list", len(memberships)),
		markup,
	)
}
