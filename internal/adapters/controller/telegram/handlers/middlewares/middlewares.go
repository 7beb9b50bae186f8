package middlewares

import (
	"context"
	"errors"
	"strings"

	"github.com/nlypage/intele"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/herbalife-clubes/admin-bot/cmd/bot"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/api"
	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/service"
	"github.com/herbalife-clubes/admin-bot/pkg/logger/types"
)

type authService interface {
	Restore(ctx context.Context, adminID int64) (*entity.User, error)
}

type Handler struct {
	bot         *tele.Bot
	layout      *layout.Layout
	logger      *types.Logger
	authService authService
	input       *intele.InputManager
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		bot:         b.Bot,
		layout:      b.Layout,
		logger:      b.Logger,
		authService: service.NewAuthService(api.NewAuthStorage(b.API), b.Redis.Sessions),
		input:       b.Input,
	}
}

// Authorized gates every panel action behind a live backend session.
func (h Handler) Authorized(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := api.WithAdmin(context.Background(), c.Sender().ID)
		profile, err := h.authService.Restore(ctx, c.Sender().ID)
		if err != nil {
			if errors.Is(err, errorz.ErrSessionExpired) {
				return c.Send(
					h.layout.Text(c, "session_expired"),
					h.layout.Markup(c, "auth:menu"),
				)
			}
			h.logger.Errorf("(user: %d) error while restoring session: %v", c.Sender().ID, err)
			return c.Send(
				h.layout.Text(c, "technical_issues", err.Error()),
				h.layout.Markup(c, "core:hide"),
			)
		}
		if profile == nil {
			return c.Send(
				h.layout.Text(c, "auth_required"),
				h.layout.Markup(c, "auth:menu"),
			)
		}
		return next(c)
	}
}

// ResetInputOnBack clears the pending input state when a back button is
// pressed or a command arrives mid-form.
func (h Handler) ResetInputOnBack(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Callback() != nil {
			if strings.Contains(c.Callback().Data, "back") || strings.Contains(c.Callback().Unique, "back") {
				h.input.Cancel(c.Sender().ID)
			}
		}
		if c.Message() != nil {
			if strings.HasPrefix(c.Message().Text, "/") {
				h.input.Cancel(c.Sender().ID)
			}
		}

		return next(c)
	}
}
