package admin

import (
	"strings"

	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

func (h Handler) achievementsList(c tele.Context) error {
	h.logger.Infof("(user: %d) edit achievements list", c.Sender().ID)

	achievements, err := h.achievementService.List(h.ctx(c))
	if err != nil {
		h.logger.Errorf("(user: %d) error while get achievements: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "mainMenu:backRow"))
	}

	markup := c.Bot().NewMarkup()
	var rows []tele.Row
	rows = append(rows, markup.Row(*h.layout.Button(c, "admin:achievements:create")))
	for _, achievement := range achievements {
		rows = append(rows, markup.Row(*h.layout.Button(c, "admin:achievements:achievement", achievement)))
	}
	rows = append(rows, markup.Row(*h.layout.Button(c, "mainMenu:back")))
	markup.Inline(rows...)

	return c.Edit(
		h.layout.Text(c, "achievements_list", len(achievements)),
		markup,
	)
}

func (h Handler) achievementMenu(c tele.Context) error {
	achievementID, err := callbackID(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit achievement menu (achievement_id=%d)", c.Sender().ID, achievementID)

	achievement, err := h.achievementService.Get(h.ctx(c), achievementID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get achievement: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:achievements:backRow"))
	}

	return c.Edit(
		h.layout.Text(c, "admin_achievement_menu_text", achievement),
		h.layout.Markup(c, "admin:achievement:menu", achievement),
	)
}

func (h Handler) createAchievement(c tele.Context) error {
	h.logger.Infof("(user: %d) create achievement request", c.Sender().ID)

	backMarkup := h.layout.Markup(c, "admin:achievements:backRow")

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_achievement_name"), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_achievement_name", "invalid_achievement_name", backMarkup, validator.AchievementName)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_achievement_description"), backMarkup)
	description, canceled := h.collectInput(c, inputCollector, "input_achievement_description", "invalid_achievement_description", backMarkup, optional(validator.AchievementDescription))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_achievement_icon"), backMarkup)
	iconURL, canceled := h.collectInput(c, inputCollector, "input_achievement_icon", "invalid_achievement_icon", backMarkup, optional(validator.AchievementIconURL))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_achievement_requirement"), backMarkup)
	requirement, canceled := h.collectInput(c, inputCollector, "input_achievement_requirement", "invalid_achievement_requirement", backMarkup, validator.AchievementRequirementType)
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	achievement, err := h.achievementService.Create(h.ctx(c), &entity.Achievement{
		Name:            name,
		Description:     skipValue(description),
		IconURL:         skipValue(iconURL),
		RequirementType: entity.RequirementType(strings.ToUpper(strings.TrimSpace(requirement))),
	})
	if err != nil {
		h.logger.Errorf("(user: %d) error while create achievement: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) achievement created (achievement_id=%d)", c.Sender().ID, achievement.ID)
	return c.Send(
		h.layout.Text(c, "achievement_created", achievement),
		backMarkup,
	)
}

func (h Handler) editAchievement(c tele.Context) error {
	achievementID, err := callbackID(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) edit achievement request (achievement_id=%d)", c.Sender().ID, achievementID)

	backMarkup := h.layout.Markup(c, "admin:achievement:backRow", struct{ ID int64 }{ID: achievementID})

	achievement, err := h.achievementService.Get(h.ctx(c), achievementID)
	if err != nil {
		h.logger.Errorf("(user: %d) error while get achievement: %v", c.Sender().ID, err)
		return h.editError(c, err, backMarkup)
	}

	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(h.layout.Text(c, "input_achievement_name_edit", achievement.Name), backMarkup)
	name, canceled := h.collectInput(c, inputCollector, "input_achievement_name_edit", "invalid_achievement_name", backMarkup, optional(validator.AchievementName))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_achievement_description_edit", achievement.Description), backMarkup)
	description, canceled := h.collectInput(c, inputCollector, "input_achievement_description_edit", "invalid_achievement_description", backMarkup, optional(validator.AchievementDescription))
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c, h.layout.Text(c, "input_achievement_requirement_edit", achievement.RequirementType), backMarkup)
	requirement, canceled := h.collectInput(c, inputCollector, "input_achievement_requirement_edit", "invalid_achievement_requirement", backMarkup, optional(validator.AchievementRequirementType))
	if canceled {
		return nil
	}
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	if name != skipToken {
		achievement.Name = name
	}
	if description != skipToken {
		achievement.Description = description
	}
	if requirement != skipToken {
		achievement.RequirementType = entity.RequirementType(strings.ToUpper(strings.TrimSpace(requirement)))
	}

	updated, err := h.achievementService.Update(h.ctx(c), achievement)
	if err != nil {
		h.logger.Errorf("(user: %d) error while update achievement: %v", c.Sender().ID, err)
		return h.sendError(c, err, backMarkup)
	}

	h.logger.Infof("(user: %d) achievement updated (achievement_id=%d)", c.Sender().ID, updated.ID)
	return c.Send(
		h.layout.Text(c, "achievement_updated", updated),
		backMarkup,
	)
}

func (h Handler) deleteAchievement(c tele.Context) error {
	achievementID, err := callbackID(c)
	if err != nil {
		return err
	}
	return c.Edit(
		h.layout.Text(c, "confirm_delete_achievement", achievementID),
		h.layout.Markup(c, "admin:achievement:deleteConfirm", struct{ ID int64 }{ID: achievementID}),
	)
}

func (h Handler) confirmDeleteAchievement(c tele.Context) error {
	achievementID, err := callbackID(c)
	if err != nil {
		return err
	}
	h.logger.Infof("(user: %d) delete achievement (achievement_id=%d)", c.Sender().ID, achievementID)

	if err = h.achievementService.Delete(h.ctx(c), achievementID); err != nil {
		h.logger.Errorf("(user: %d) error while delete achievement: %v", c.Sender().ID, err)
		return h.editError(c, err, h.layout.Markup(c, "admin:achievements:backRow"))
	}

	return c.Edit(
		h.layout.Text(c, "achievement_deleted"),
		h.layout.Markup(c, "admin:achievements:backRow"),
	)
}
