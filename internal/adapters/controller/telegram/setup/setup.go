package setup

import (
	"github.com/spf13/viper"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"

	"github.com/herbalife-clubes/admin-bot/cmd/bot"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/controller/telegram/handlers/admin"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/controller/telegram/handlers/auth"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/controller/telegram/handlers/menu"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/controller/telegram/handlers/middlewares"
)

func Setup(b *bot.Bot) {
	middle := middlewares.New(b)
	authHandler := auth.New(b)
	menuHandler := menu.New(b)
	adminHandler := admin.New(b)

	if viper.GetBool("settings.debug") {
		b.Use(middleware.Logger())
	}
	b.Use(b.Layout.Middleware("es"))
	b.Use(middleware.AutoRespond())

	// The panel is only for the allow-listed operator accounts.
	admins := viper.GetIntSlice("bot.admin-ids")
	adminsInt64 := make([]int64, len(admins))
	for i, v := range admins {
		adminsInt64[i] = int64(v)
	}
	b.Use(middleware.Whitelist(adminsInt64...))

	b.Handle(tele.OnText, b.Input.Handler())
	b.Handle(tele.OnMedia, b.Input.Handler())
	b.Use(middle.ResetInputOnBack)

	// Login and logout stay reachable without a backend session.
	authHandler.AuthSetup(b.Group())

	b.Use(middle.Authorized)
	b.Handle(b.Layout.TextLocale("es", "open_main_menu"), menuHandler.SendMenu)
	b.Handle(b.Layout.Callback("mainMenu:back"), menuHandler.EditMenu)

	adminHandler.AdminSetup(b.Group())
}
