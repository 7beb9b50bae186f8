package service

import (
	"strings"

	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/herbalife-clubes/admin-bot/pkg/logger/types"
)

// NotifyService mirrors log entries into a Telegram channel so operators
// see backend failures without tailing the bot's stdout.
type NotifyService struct {
	bot    *tele.Bot
	layout *layout.Layout
	logger *types.Logger
}

func NewNotifyService(bot *tele.Bot, layout *layout.Layout, logger *types.Logger) *NotifyService {
	return &NotifyService{
		bot:    bot,
		layout: layout,
		logger: logger,
	}
}

// LogHook returns a hook that forwards entries at or above level to the
// channel. Failures to deliver are logged once and never recurse.
func (s *NotifyService) LogHook(channelID int64, locale string, level zapcore.Level) (types.LogHook, error) {
	chat, err := s.bot.ChatByID(channelID)
	if err != nil {
		return nil, err
	}
	return func(log types.Log) {
		if log.Level < level {
			return
		}
		if _, err = s.bot.Send(chat, s.layout.TextLocale(locale, "log", log)); err != nil &&
			!strings.Contains(log.Message, "failed to send log to channel") {
			s.logger.Errorf("failed to send log to channel %d: %v", channelID, err)
		}
	}, nil
}
