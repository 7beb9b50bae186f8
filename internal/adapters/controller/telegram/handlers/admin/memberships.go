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

type membershipCallback struct {
	ID     int64
	ClubID int64
}

func (h Handler) membershipMenu(c tele.Context) error {
	membershipID, clubID, err := membershipCallbackData(c)
	if err != nil {
		return err
	}
	return h.membershipView(c, membershipID, clubID)
}

// membershipView renders the membership card with override actions. Always
// re-fetches so overrides applied elsewhere are visible immediately.
func (h Handler) membershipView(c tele.Context, membershipID, clubID int64) error {
	h.logger.Infof("(user: %d) edit membership menu (membership_id=%d)", c.Sender().ID, membershipID)

	membership, err := h.membershipService.Get(h.ctx(c), membershipID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get membership: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:club:membersBackRow", clubCallback{ID: clubID, Page: "0"}))
	}

	data := membershipCallback{ID: membershipID, ClubID: clubID}
	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	if membership.Status == entity.MembershipActive {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:membership:suspend", data)))
	} else {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:membership:resume", data)))
	}
	rows = append(rows, markup.Row(
		*h.layout.Button(c, "admin:membership:set_tier", data),
		*h.layout.Button(c, "admin:membership:set_points", data),
	))
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:club:members", clubCallback{ID: clubID, Page: "0"})))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "admin_membership_menu_text", membership),
		markup,
	)
}

// toggleMembership asks for confirmation before flipping the status.
func (h Handler) toggleMembership(c tele.Context) error {
	membershipID, clubID, err := membershipCallbackData(c)
	if err != nil {
		return err
	}

	membership, err := h.membershipService.Get(h.ctx(c), membershipID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get membership: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:club:membersBackRow", clubCallback{ID: clubID, Page: "0"}))
	}

	key := "confirm_suspend_membership"
	if membership.Status != entity.MembershipActive {
		key = "confirm_resume_membership"
	}
	return c.Edit(
		h.layout.Text(c, key, membershipID),
		h.layout.Markup(c, "admin:membership:toggleConfirm", membershipCallback{ID: membershipID, ClubID: clubID}),
	)
}

func (h Handler) confirmToggleMembership(c tele.Context) error {
	membershipID, clubID, err := membershipCallbackData(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) toggle membership (membership_id=%d)", c.Sender().ID, membershipID)

	backMarkup := h.layout.Markup(c, "admin:club:membersBackRow", clubCallback{ID: clubID, Page: "0"})

	membership, err := h.membershipService.Get(h.ctx(c), membershipID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get membership: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	status := entity.MembershipActive
	if membership.Status == entity.MembershipActive {
		status = entity.MembershipInactive
	}
	if err = h.membershipService.SetStatus(h.ctx(c), membershipID, status); err != nil {
		h.logger.Errorf("(user: %d) error while set membership status: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) membership status set (membership_id=%d, status=%s)", c.Sender().ID, membershipID, status)
	return h.membershipView(c, membershipID, clubID)
}

func (h Handler) membershipTierPicker(c tele.Context) error {
	membershipID, clubID, err := membershipCallbackData(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) membership tier picker (membership_id=%d)", c.Sender().ID, membershipID)

	tiers, err := h.tierService.List(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get tiers: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:club:membersBackRow", clubCallback{ID: clubID, Page: "0"}))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	for _, tier := range tiers {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:membership:pick_tier", struct {
			ID     int64
			TierID int64
			ClubID int64
			Name   string
		}{
			ID:     membershipID,
			TierID: tier.ID,
			ClubID: clubID,
			Name:   tier.Name,
		})))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:memberships:membership_back", membershipCallback{ID: membershipID, ClubID: clubID})))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "pick_tier_for_membership"),
		markup,
	)
}

func (h Handler) setMembershipTier(c tele.Context) error {
	parts := strings.Split(c.Callback().Data, " ")
	if len(parts) != 3 {
		return errorz.ErrInvalidCallbackData
	}
	membershipID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return errorz.ErrInvalidCallbackData
	}
	tierID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return errorz.ErrInvalidCallbackData
	}
	clubID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return errorz.ErrInvalidCallbackData
	}

	h.logger.Infof("(user: %d) set membership tier (membership_id=%d, tier_id=%d)", c.Sender().ID, membershipID, tierID)
	if err = h.membershipService.SetTier(h.ctx(c), membershipID, tierID); err != nil {
		h.logger.Errorf("(user: %d) error while set membership tier: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:club:membersBackRow", clubCallback{ID: clubID, Page: "0"}))
	}
	return h.membershipView(c, membershipID, clubID)
}

func (h Handler) setMembershipPoints(c tele.Context) error {
	membershipID, clubID, err := membershipCallbackData(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) set membership points request (membership_id=%d)", c.Sender().ID, membershipID)

	backMarkup := h.layout.Markup(c, "admin:memberships:membershipBackRow", membershipCallback{ID: membershipID, ClubID: clubID})

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_membership_points"), backMarkup)
	pointsText, canceled := h.collectInput(c, inputCollector, "input_membership_points", "invalid_membership_points", backMarkup, validator.MembershipPoints)
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	points, _ := strconv.Atoi(pointsText)
	if err = h.membershipService.SetPoints(h.ctx(c), membershipID, points); err != nil {
		h.logger.Errorf("(user: %d) error while set membership points: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) membership points set (membership_id=%d, points=%d)", c.Sender().ID, membershipID, points)
	return c.Send(
		h.layout.Text(c, "membership_points_set", points),
		backMarkup,
	)
}

func membershipCallbackData(c tele.Context) (int64, int64, error) {
	parts := strings.Split(c.Callback().Data, " ")
	if len(parts) != 2 {
		return 0, 0, errorz.ErrInvalidCallbackData
	}
	membershipID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, errorz.ErrInvalidCallbackData
	}
	clubID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, errorz.ErrInvalidCallbackData
	}
	return membershipID, clubID, nil
}
