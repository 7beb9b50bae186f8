package admin

import (
	"errors"

	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

type userCallback struct {
	ID   int64
	Page string
}

func (h Handler) usersList(c tele.Context) error {
	page := parsePage(c.Callback().Data)
	h.logger.Infof("(user: %d) edit users list (page=%d)", c.Sender().ID, page)

	users, err := h.userService.List(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get users: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "mainMenu:backRow"))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	for _, user := range pageOf(users, page) {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:users:user", struct {
			ID       int64
			FullName string
			Status   entity.UserStatus
			Page     int
		}{
			ID:       user.ID,
			FullName: user.FullName(),
			Status:   user.Status,
			Page:     page,
		})))
	}
	h.pager(c, markup, rows, "admin:users", page, len(users))

	return c.Edit(
		h.layout.Text(c, "users_list", len(users)),
		markup,
	)
}

func (h Handler) userMenu(c tele.Context) error {
	userID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit user menu (target_user_id=%d)", c.Sender().ID, userID)

	user, err := h.userService.Profile(h.ctx(c), userID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get user profile: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:users:backRow", struct{ Page string }{Page: page}))
	}

	data := userCallback{ID: userID, Page: page}
	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(
		*h.layout.Button(c, "admin:user:membership", data),
		*h.layout.Button(c, "admin:user:notifications", data),
	))
	if user.Status == entity.UserActive && !user.IsAdmin() {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:user:deactivate", data)))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:users:back", struct{ Page string }{Page: page})))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "admin_user_menu_text", user),
		markup,
	)
}

func (h Handler) deactivateUser(c tele.Context) error {
	userID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	return c.Edit(
		h.layout.Text(c, "confirm_deactivate_user", userID),
		h.layout.Markup(c, "admin:user:deactivateConfirm", userCallback{ID: userID, Page: page}),
	)
}

func (h Handler) confirmDeactivateUser(c tele.Context) error {
	userID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) deactivate user (target_user_id=%d)", c.Sender().ID, userID)

	backMarkup := h.layout.Markup(c, "admin:user:backRow", userCallback{ID: userID, Page: page})
	if err = h.userService.Deactivate(h.ctx(c), userID); err != nil {
		if errors.Is(err, errorz.ErrAdminLocked) {
			return c.Edit(
				h.layout.Text(c, "admin_locked"),
				backMarkup,
			)
		}
		h.logger.Errorf("(user: %d) error while deactivate user: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}
	return h.userMenu(c)
}

func (h Handler) userMembership(c tele.Context) error {
	userID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) user membership (target_user_id=%d)", c.Sender().ID, userID)

	backMarkup := h.layout.Markup(c, "admin:user:backRow", userCallback{ID: userID, Page: page})

	membership, err := h.membershipService.GetByUser(h.ctx(c), userID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get user membership: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	markup := c.Bot().NewMarkup()
	markup.Inline(
		markup.Row(*h.layout.Button(c, "admin:memberships:membership", struct {
			ID       int64
			UserName string
			Status   entity.MembershipStatus
			ClubID   int64
		}{
			ID:       membership.ID,
			UserName: membership.UserName,
			Status:   membership.Status,
			ClubID:   membership.ClubID,
		})),
		markup.Row(*h.layout.Button(c, "admin:users:back", struct{ Page string }{Page: page})),
	)

	return c.Edit(
		h.layout.Text(c, "admin_membership_menu_text", membership),
		markup,
	)
}

func (h Handler) userNotifications(c tele.Context) error {
	userID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) user notifications (target_user_id=%d)", c.Sender().ID, userID)

	backMarkup := h.layout.Markup(c, "admin:user:backRow", userCallback{ID: userID, Page: page})

	notifications, err := h.notificationService.HistoryByUser(h.ctx(c), userID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get user notifications: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	const historyLimit = 15
	recent := make([]entity.Notification, 0, historyLimit)
	for i := len(notifications) - 1; i >= 0 && len(recent) < historyLimit; i-- {
		recent = append(recent, notifications[i])
	}

	return c.Edit(
		h.layout.Text(c, "notifications_history", struct {
			Total int
			Items []entity.Notification
		}{
			Total: len(notifications),
			Items: recent,
		}),
		backMarkup,
	)
}
