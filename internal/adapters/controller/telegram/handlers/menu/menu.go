package menu

import (
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/herbalife-clubes/admin-bot/cmd/bot"
	"github.com/herbalife-clubes/admin-bot/pkg/logger/types"
)

type Handler struct {
	layout *layout.Layout
	logger *types.Logger
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		layout: b.Layout,
		logger: b.Logger,
	}
}

func (h Handler) SendMenu(c tele.Context) error {
	h.logger.Infof("(user: %d) send main menu", c.Sender().ID)
	return c.Send(
		h.layout.Text(c, "main_menu_text", c.Sender().Username),
		h.layout.Markup(c, "mainMenu:menu"),
	)
}

func (h Handler) EditMenu(c tele.Context) error {
	h.logger.Infof("(user: %d) edit main menu", c.Sender().ID)
	return c.Edit(
		h.layout.Text(c, "main_menu_text", c.Sender().Username),
		h.layout.Markup(c, "mainMenu:menu"),
	)
}
