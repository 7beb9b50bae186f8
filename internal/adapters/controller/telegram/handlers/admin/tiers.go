package admin

import (
	"strconv"

	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

// Tiers are a short list, no pagination.
func (h Handler) tiersList(c tele.Context) error {
	h.logger.Infof("(user: %d) edit tiers list", c.Sender().ID)

	tiers, err := h.tierService.List(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get tiers: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "mainMenu:backRow"))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:tiers:create")))
	for _, tier := range tiers {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:tiers:tier", tier)))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "mainMenu:back")))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "tiers_list", len(tiers)),
		markup,
	)
}

func (h Handler) tierMenu(c tele.Context) error {
	tierID, err := callbackID(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit tier menu (tier_id=%d)", c.Sender().ID, tierID)

	tier, err := h.tierService.Get(h.ctx(c), tierID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get tier: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:tiers:backRow"))
	}

	return c.Edit(
		h.layout.Text(c, "admin_tier_menu_text", tier),
		h.layout.Markup(c, "admin:tier:menu", tier),
	)
}

func (h Handler) createTier(c tele.Context) error {
	h.logger.Infof("(user: %d) create tier request", c.Sender().ID)

	backMarkup := h.layout.Markup(c, "admin:tiers:backRow")

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_tier_name"), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_tier_name", "invalid_tier_name", backMarkup, validator.TierName)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_tier_visits"), backMarkup)
	visitsText, canceled := h.collectInput(c, inputCollector, "input_tier_visits", "invalid_tier_visits", backMarkup, optional(validator.TierRequiredVisits))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_tier_benefits"), backMarkup)
	benefits, canceled := h.collectInput(c, inputCollector, "input_tier_benefits", "invalid_tier_benefits", backMarkup, optional(validator.TierBenefits))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	visits, _ := strconv.Atoi(skipValue(visitsText))

	tier, err := h.tierService.Create(h.ctx(c), &entity.Tier{
		Name:           name,
		RequiredVisits: visits,
		Benefits:       skipValue(benefits),
	})
	if err != nil {
		h.logger.Errorf("(user: %d) error while create tier: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) tier created (tier_id=%d)", c.Sender().ID, tier.ID)
	return c.Send(
		h.layout.Text(c, "tier_created", tier),
		backMarkup,
	)
}

func (h Handler) editTier(c tele.Context) error {
	tierID, err := callbackID(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit tier request (tier_id=%d)", c.Sender().ID, tierID)

	backMarkup := h.layout.Markup(c, "admin:tier:backRow", struct{ ID int64 }{ID: tierID})

	tier, err := h.tierService.Get(h.ctx(c), tierID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get tier: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_tier_name_edit", tier.Name), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_tier_name_edit", "invalid_tier_name", backMarkup, optional(validator.TierName))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_tier_visits_edit", tier.RequiredVisits), backMarkup)
	visitsText, canceled := h.collectInput(c, inputCollector, "input_tier_visits_edit", "invalid_tier_visits", backMarkup, optional(validator.TierRequiredVisits))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_tier_benefits_edit", tier.Benefits), backMarkup)
	benefits, canceled := h.collectInput(c, inputCollector, "input_tier_benefits_edit", "invalid_tier_benefits", backMarkup, optional(validator.TierBenefits))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	if name != skipToken {
		tier.Name = name
	}
	if visitsText != skipToken {
		tier.RequiredVisits, _ = strconv.Atoi(visitsText)
	}
	if benefits != skipToken {
		tier.Benefits = benefits
	}

	updated, err := h.tierService.Update(h.ctx(c), tier)
	if err != nil {
		h.logger.Errorf("(user: %d) error while update tier: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) tier updated (tier_id=%d)", c.Sender().ID, updated.ID)
	return c.Send(
		h.layout.Text(c, "tier_updated", updated),
		backMarkup,
	)
}

func (h Handler) deleteTier(c tele.Context) error {
	tierID, err := callbackID(c)
	if err != nil {
		return err
	}
	return c.Edit(
		h.layout.Text(c, "confirm_delete_tier", tierID),
		h.layout.Markup(c, "admin:tier:deleteConfirm", struct{ ID int64 }{ID: tierID}),
	)
}

func (h Handler) confirmDeleteTier(c tele.Context) error {
	tierID, err := callbackID(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) delete tier (tier_id=%d)", c.Sender().ID, tierID)

	if err = h.tierService.Delete(h.ctx(c), tierID); err != nil {
		h.logger.Errorf("(user: %d) error while delete tier: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:tiers:backRow"))
	}

	return c.Edit(
		h.layout.Text(c, "tier_deleted"),
		h.layout.Markup(c, "admin:tiers:backRow"),
	)
}
