package admin

import (
	"strconv"

	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

type hubCallback struct {
	ID   int64
	Page string
}

func (h Handler) hubsList(c tele.Context) error {
	page := parsePage(c.Callback().Data)
	h.logger.Infof("(user: %d) edit hubs list (page=%d)", c.Sender().ID, page)

	hubs, err := h.hubService.List(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get hubs: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "mainMenu:backRow"))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:hubs:create", struct{ Page int }{Page: page})))
	for _, hub := range pageOf(hubs, page) {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:hubs:hub", struct {
			ID     int64
			Name   string
			City   string
			Status entity.HubStatus
			Page   int
		}{
			ID:     hub.ID,
			Name:   hub.Name,
			City:   hub.City,
			Status: hub.Status,
			Page:   page,
		})))
	}
	h.pager(c, markup, rows, "admin:hubs", page, len(hubs))

	return c.Edit(
		h.layout.Text(c, "hubs_list", len(hubs)),
		markup,
	)
}

func (h Handler) hubMenu(c tele.Context) error {
	hubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit hub menu (hub_id=%d)", c.Sender().ID, hubID)

	hub, err := h.hubService.Get(h.ctx(c), hubID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get hub: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:hubs:backRow", struct{ Page string }{Page: page}))
	}

	data := hubCallback{ID: hubID, Page: page}
	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:hub:edit", data)))
	if hub.Status == entity.HubActive {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:hub:deactivate", data)))
	} else {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:hub:activate", data)))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:hubs:back", struct{ Page string }{Page: page})))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "admin_hub_menu_text", hub),
		markup,
	)
}

func (h Handler) createHub(c tele.Context) error {
	page := parsePage(c.Callback().Data)
	h.logger.Infof("(user: %d) create hub request", c.Sender().ID)

	backMarkup := h.layout.Markup(c, "admin:hubs:backRow", struct{ Page string }{Page: strconv.Itoa(page)})

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_hub_name"), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_hub_name", "invalid_hub_name", backMarkup, validator.HubName)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_hub_city"), backMarkup)
	city, canceled := h.collectInput(c, inputCollector, "input_hub_city", "invalid_hub_city", backMarkup, validator.HubCity)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_hub_address"), backMarkup)
	address, canceled := h.collectInput(c, inputCollector, "input_hub_address", "invalid_hub_address", backMarkup, validator.HubAddress)
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	if errs := validator.Validate(
		validator.Field{Name: "nombre", Value: name, Rules: []validator.Rule{{Check: validator.HubName, Message: "invalid_hub_name"}}},
		validator.Field{Name: "ciudad", Value: city, Rules: []validator.Rule{{Check: validator.HubCity, Message: "invalid_hub_city"}}},
		validator.Field{Name: "direccion", Value: address, Rules: []validator.Rule{{Check: validator.HubAddress, Message: "invalid_hub_address"}}},
	); len(errs) > 0 {
		h.logger.Warnf("(user: %d) hub form rejected at submit: %v", c.Sender().ID, errs)
		return c.Send(h.layout.Text(c, "form_invalid"), backMarkup)
	}

	profile, err := h.profile(c)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get admin profile: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	hub, err := h.hubService.Create(h.ctx(c), &entity.Hub{
		Name:    name,
		City:    city,
		Address: address,
	}, profile.ID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while create hub: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) hub created (hub_id=%d)", c.Sender().ID, hub.ID)
	return c.Send(
		h.layout.Text(c, "hub_created", hub),
		backMarkup,
	)
}

func (h Handler) editHub(c tele.Context) error {
	hubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit hub request (hub_id=%d)", c.Sender().ID, hubID)

	backMarkup := h.layout.Markup(c, "admin:hub:backRow", hubCallback{ID: hubID, Page: page})

	hub, err := h.hubService.Get(h.ctx(c), hubID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get hub: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_hub_name_edit", hub.Name), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_hub_name_edit", "invalid_hub_name", backMarkup, optional(validator.HubName))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_hub_city_edit", hub.City), backMarkup)
	city, canceled := h.collectInput(c, inputCollector, "input_hub_city_edit", "invalid_hub_city", backMarkup, optional(validator.HubCity))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_hub_address_edit", hub.Address), backMarkup)
	address, canceled := h.collectInput(c, inputCollector, "input_hub_address_edit", "invalid_hub_address", backMarkup, optional(validator.HubAddress))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	if name != skipToken {
		hub.Name = name
	}
	if city != skipToken {
		hub.City = city
	}
	if address != skipToken {
		hub.Address = address
	}

	updated, err := h.hubService.Update(h.ctx(c), hub)
	if err != nil {
		h.logger.Errorf("(user: %d) error while update hub: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) hub updated (hub_id=%d)", c.Sender().ID, updated.ID)
	return c.Send(
		h.layout.Text(c, "hub_updated", updated),
		backMarkup,
	)
}

func (h Handler) activateHub(c tele.Context) error {
	hubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) activate hub (hub_id=%d)", c.Sender().ID, hubID)

	if err = h.hubService.Activate(h.ctx(c), hubID); err != nil {
		h.logger.Errorf("(user: %d) error while activate hub: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:hub:backRow", hubCallback{ID: hubID, Page: page}))
	}
	return h.hubMenu(c)
}

// deactivateHub asks for confirmation: an inactive hub hides all its clubs.
func (h Handler) deactivateHub(c tele.Context) error {
	hubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	return c.Edit(
		h.layout.Text(c, "confirm_deactivate_hub", hubID),
		h.layout.Markup(c, "admin:hub:deactivateConfirm", hubCallback{ID: hubID, Page: page}),
	)
}

func (h Handler) confirmDeactivateHub(c tele.Context) error {
	hubID, page, err := callbackIDPage(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) deactivate hub (hub_id=%d)", c.Sender().ID, hubID)

	if err = h.hubService.Deactivate(h.ctx(c), hubID); err != nil {
		h.logger.Errorf("(user: %d) error while deactivate hub: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:hub:backRow", hubCallback{ID: hubID, Page: page}))
	}
	return h.hubMenu(c)
}
