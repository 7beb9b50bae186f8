package admin

import (
	"strconv"

	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

type eventCallback struct {
	ID   int64
	Page string
}

func (h Handler) eventsList(c tele.Context) error {
	page := parsePage(c.Callback().Data)
	h.logger.Infof("(user: %d) edit events list (page=%d)", c.Sender().ID, page)

	events, err := h.eventService.List(h.ctx(c), 0, 0)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get events: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "mainMenu:backRow"))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:events:create", struct{ Page int }{Page: page})))
	for _, event := range pageOf(events, page) {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:events:event", struct {
			ID   int64
			Name string
			Date string
			Page int
		}{
			ID:   event.ID,
			Name: event.Name,
			Date: event.Date,
			Page: page,
		})))
	}
	h.pager(c, markup, rows, "admin:events", page, len(events))

	return c.Edit(
		h.layout.Text(c, "events_list", len(events)),
		markup,
	)
}

func (h Handler) eventMenu(c tele.Context) error {
	eventID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit event menu (event_id=%d)", c.Sender().ID, eventID)

	event, err := h.eventService.Get(h.ctx(c), eventID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get event: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:events:backRow", struct{ Page string }{Page: page}))
	}

	return c.Edit(
		h.layout.Text(c, "admin_event_menu_text", event),
		h.layout.Markup(c, "admin:event:menu", eventCallback{ID: eventID, Page: page}),
	)
}

func (h Handler) createEvent(c tele.Context) error {
	page := parsePage(c.Callback().Data)
	h.logger.Infof("(user: %d) create event request", c.Sender().ID)

	backMarkup := h.layout.Markup(c, "admin:events:backRow", struct{ Page string }{Page: strconv.Itoa(page)})

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_event_name"), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_event_name", "invalid_event_name", backMarkup, validator.EventName)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_event_description"), backMarkup)
	description, canceled := h.collectInput(c, inputCollector, "input_event_description", "invalid_event_description", backMarkup, optional(validator.EventDescription))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_event_date"), backMarkup)
	date, canceled := h.collectInput(c, inputCollector, "input_event_date", "invalid_event_date", backMarkup, optional(validator.EventDate))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_event_location"), backMarkup)
	location, canceled := h.collectInput(c, inputCollector, "input_event_location", "invalid_event_location", backMarkup, optional(validator.EventLocation))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_event_hub_id"), backMarkup)
	hubIDText, canceled := h.collectInput(c, inputCollector, "input_event_hub_id", "invalid_numeric_id", backMarkup, optional(validator.NumericID))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_event_club_id"), backMarkup)
	clubIDText, canceled := h.collectInput(c, inputCollector, "input_event_club_id", "invalid_numeric_id", backMarkup, optional(validator.NumericID))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	hubID, _ := strconv.ParseInt(skipValue(hubIDText), 10, 64)
	clubID, _ := strconv.ParseInt(skipValue(clubIDText), 10, 64)

	event, err := h.eventService.Create(h.ctx(c), &entity.Event{
		Name:        name,
		Description: skipValue(description),
		Date:        skipValue(date),
		Location:    skipValue(location),
	}, hubID, clubID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while create event: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) event created (event_id=%d)", c.Sender().ID, event.ID)
	return c.Send(
		h.layout.Text(c, "event_created", event),
		backMarkup,
	)
}

func (h Handler) editEvent(c tele.Context) error {
	eventID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit event request (event_id=%d)", c.Sender().ID, eventID)

	backMarkup := h.layout.Markup(c, "admin:event:backRow", eventCallback{ID: eventID, Page: page})

	event, err := h.eventService.Get(h.ctx(c), eventID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get event: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_event_name_edit", event.Name), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_event_name_edit", "invalid_event_name", backMarkup, optional(validator.EventName))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_event_description_edit", event.Description), backMarkup)
	description, canceled := h.collectInput(c, inputCollector, "input_event_description_edit", "invalid_event_description", backMarkup, optional(validator.EventDescription))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_event_date_edit", event.Date), backMarkup)
	date, canceled := h.collectInput(c, inputCollector, "input_event_date_edit", "invalid_event_date", backMarkup, optional(validator.EventDate))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_event_location_edit", event.Location), backMarkup)
	location, canceled := h.collectInput(c, inputCollector, "input_event_location_edit", "invalid_event_location", backMarkup, optional(validator.EventLocation))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	if name != skipToken {
		event.Name = name
	}
	if description != skipToken {
		event.Description = description
	}
	if date != skipToken {
		event.Date = date
	}
	if location != skipToken {
		event.Location = location
	}

	updated, err := h.eventService.Update(h.ctx(c), event)
	if err != nil {
		h.logger.Errorf("(user: %d) error while update event: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) event updated (event_id=%d)", c.Sender().ID, updated.ID)
	return c.Send(
		h.layout.Text(c, "event_updated", updated),
		backMarkup,
	)
}

func (h Handler) deleteEvent(c tele.Context) error {
	eventID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	return c.Edit(
		h.layout.Text(c, "confirm_delete_event", eventID),
		h.layout.Markup(c, "admin:event:deleteConfirm", eventCallback{ID: eventID, Page: page}),
	)
}

func (h Handler) confirmDeleteEvent(c tele.Context) error {
	eventID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) delete event (event_id=%d)", c.Sender().ID, eventID)

	backMarkup := h.layout.Markup(c, "admin:events:backRow", struct{ Page string }{Page: page})
	if err = h.eventService.Delete(h.ctx(c), eventID); err != nil {
		h.logger.Errorf("(user: %d) error while delete event: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	return c.Edit(
		h.layout.Text(c, "event_deleted"),
		backMarkup,
	)
}
