package main

import (
	"log"

	_ "time/tzdata"

	"github.com/herbalife-clubes/admin-bot/cmd/bot"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/config"
	setupBot "github.com/herbalife-clubes/admin-bot/internal/adapters/controller/telegram/setup"
)

func main() {
	cfg := config.Get()
	b, err := bot.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	setupBot.Setup(b)

	b.Start()
}
