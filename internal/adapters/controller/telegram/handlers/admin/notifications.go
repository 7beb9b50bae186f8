package admin

import (
	"strings"

	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

func (h Handler) notificationsMenu(c tele.Context) error {
	h.logger.Infof("(user: %d) edit notifications menu", c.Sender().ID)
	return c.Edit(
		h.layout.Text(c, "notifications_menu_text"),
		h.layout.Markup(c, "admin:notifications:menu"),
	)
}

func (h Handler) notificationsHistory(c tele.Context) error {
	h.logger.Infof("(user: %d) notifications history", c.Sender().ID)
	notifications, err := h.notificationService.History(h.ctx(c))
	return h.historyView(c, notifications, err)
}

// hubHistoryPicker lists active hubs whose delivery history can be
// inspected on its own.
func (h Handler) hubHistoryPicker(c tele.Context) error {
	h.logger.Infof("(user: %d) hub history picker", c.Sender().ID)

	backMarkup := h.layout.Markup(c, "admin:notifications:backRow")

	hubs, err := h.hubService.List(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get hubs: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	for _, hub := range hubs {
		if hub.Status != entity.HubActive {
			continue
		}
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:notifications:hub_history", struct {
			ID   int64
			Name string
		}{
			ID:   hub.ID,
			Name: hub.Name,
		})))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:notifications:back")))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "pick_hub_for_history"),
		markup,
	)
}

func (h Handler) notificationsHistoryByHub(c tele.Context) error {
	hubID, err := callbackID(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) notifications history (hub_id=%d)", c.Sender().ID, hubID)
	notifications, err := h.notificationService.HistoryByHub(h.ctx(c), hubID)
	return h.historyView(c, notifications, err)
}

func (h Handler) clubHistoryPicker(c tele.Context) error {
	h.logger.Infof("(user: %d) club history picker", c.Sender().ID)

	backMarkup := h.layout.Markup(c, "admin:notifications:backRow")

	clubs, err := h.clubService.ListActive(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get active clubs: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}
	if len(clubs) == 0 {
		return c.Edit(h.layout.Text(c, "no_active_clubs"), backMarkup)
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	for _, club := range clubs {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:notifications:club_history", struct {
			ID   int64
			Name string
		}{
			ID:   club.ID,
			Name: club.Name,
		})))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:notifications:back")))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "pick_club_for_history"),
		markup,
	)
}

func (h Handler) notificationsHistoryByClub(c tele.Context) error {
	clubID, err := callbackID(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) notifications history (club_id=%d)", c.Sender().ID, clubID)
	notifications, err := h.notificationService.HistoryByClub(h.ctx(c), clubID)
	return h.historyView(c, notifications, err)
}

func (h Handler) historyView(c tele.Context, notifications []entity.Notification, err error) error {
	backMarkup := h.layout.Markup(c, "admin:notifications:backRow")
	if err != nil {
		h.logger.Errorf("(user: %d) error while get notifications history: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	// The history is append-only and newest-last on the backend; show the
	// latest entries first.
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

func (h Handler) sendGlobalNotification(c tele.Context) error {
	return h.sendNotificationFlow(c, entity.ScopeGlobal, 0, 0)
}

func (h Handler) hubNotificationPicker(c tele.Context) error {
	h.logger.Infof("(user: %d) hub notification picker", c.Sender().ID)

	backMarkup := h.layout.Markup(c, "admin:notifications:backRow")

	hubs, err := h.hubService.List(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get hubs: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	for _, hub := range hubs {
		if hub.Status != entity.HubActive {
			continue
		}
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:notifications:pick_hub", struct {
			ID   int64
			Name string
		}{
			ID:   hub.ID,
			Name: hub.Name,
		})))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:notifications:back")))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "pick_hub_for_notification"),
		markup,
	)
}

func (h Handler) sendHubNotification(c tele.Context) error {
	hubID, err := callbackID(c)
	if err != nil {
		return err
	}
	return h.sendNotificationFlow(c, entity.ScopeHub, hubID, 0)
}

func (h Handler) clubNotificationPicker(c tele.Context) error {
	h.logger.Infof("(user: %d) club notification picker", c.Sender().ID)

	backMarkup := h.layout.Markup(c, "admin:notifications:backRow")

	clubs, err := h.clubService.ListActive(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get active clubs: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}
	if len(clubs) == 0 {
		return c.Edit(h.layout.Text(c, "no_active_clubs"), backMarkup)
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	for _, club := range clubs {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:notifications:pick_club", struct {
			ID   int64
			Name string
		}{
			ID:   club.ID,
			Name: club.Name,
		})))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:notifications:back")))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "pick_club_for_notification"),
		markup,
	)
}

func (h Handler) sendClubNotification(c tele.Context) error {
	clubID, err := callbackID(c)
	if err != nil {
		return err
	}
	return h.sendNotificationFlow(c, entity.ScopeClub, 0, clubID)
}

// sendNotificationFlow collects title and message, then requires a typed
// confirmation before the irreversible send.
func (h Handler) sendNotificationFlow(c tele.Context, scope entity.NotificationScope, hubID, clubID int64) error {
	h.logger.Infof("(user: %d) send notification request (scope=%s)", c.Sender().ID, scope)

	backMarkup := h.layout.Markup(c, "admin:notifications:backRow")

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_notification_title"), backMarkup)
	title, canceled := h.collectInput(c, inputCollector, "input_notification_title", "invalid_notification_title", backMarkup, validator.NotificationTitle)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_notification_message"), backMarkup)
	message, canceled := h.collectInput(c, inputCollector, "input_notification_message", "invalid_notification_message", backMarkup, validator.NotificationMessage)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c,
		h.layout.Text(c, "confirm_notification", struct {
			Scope   entity.NotificationScope
			Title   string
			Message string
		}{
			Scope:   scope,
			Title:   title,
			Message: message,
		}),
		backMarkup,
	)
	_, canceled = h.collectInput(c, inputCollector, "confirm_notification", "invalid_confirmation", backMarkup, confirmWord)
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	err := h.notificationService.Send(h.ctx(c), &entity.Notification{
		Title:   title,
		Message: message,
		Scope:   scope,
		HubID:   hubID,
		ClubID:  clubID,
	})
	if err != nil {
		h.logger.Errorf("(user: %d) error while send notification: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) notification sent (scope=%s, hub_id=%d, club_id=%d)", c.Sender().ID, scope, hubID, clubID)
	return c.Send(
		h.layout.Text(c, "notification_sent"),
		backMarkup,
	)
}

func confirmWord(value string, _ map[string]interface{}) bool {
	return strings.EqualFold(strings.TrimSpace(value), "CONFIRMAR")
}
