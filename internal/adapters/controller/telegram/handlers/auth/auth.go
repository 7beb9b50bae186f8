package auth

import (
	"context"
	"errors"

	"github.com/nlypage/intele"
	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/herbalife-clubes/admin-bot/cmd/bot"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/api"
	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/service"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
	"github.com/herbalife-clubes/admin-bot/pkg/logger/types"
)

type authService interface {
	Login(ctx context.Context, adminID int64, email, password string) (*entity.Session, error)
	Restore(ctx context.Context, adminID int64) (*entity.User, error)
	Logout(ctx context.Context, adminID int64) error
}

type Handler struct {
	layout      *layout.Layout
	logger      *types.Logger
	input       *intele.InputManager
	authService authService
}

func New(b *bot.Bot) *Handler {
	return &Handler{
		layout:      b.Layout,
		logger:      b.Logger,
		input:       b.Input,
		authService: service.NewAuthService(api.NewAuthStorage(b.API), b.Redis.Sessions),
	}
}

func (h Handler) start(c tele.Context) error {
	h.logger.Infof("(user: %d) start", c.Sender().ID)

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

	return c.Send(
		h.layout.Text(c, "main_menu_text", profile.FullName()),
		h.layout.Markup(c, "mainMenu:menu"),
	)
}

func (h Handler) login(c tele.Context) error {
	h.logger.Infof("(user: %d) login request", c.Sender().ID)
	inputCollector := collector.New()
	inputCollector.Collect(c.Message())
	_ = c.Edit(
		h.layout.Text(c, "input_email"),
		h.layout.Markup(c, "auth:back"),
	)

	email, canceled := h.collect(c, inputCollector, "input_email", "invalid_email", validator.Email)
	if canceled {
		return nil
	}

	_ = inputCollector.Send(c,
		h.layout.Text(c, "input_password"),
		h.layout.Markup(c, "auth:back"),
	)
	password, canceled := h.collect(c, inputCollector, "input_password", "invalid_password", validator.Password)
	if canceled {
		return nil
	}

	// Credentials echoed in chat are wiped once collected.
	_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})

	ctx := api.WithAdmin(context.Background(), c.Sender().ID)
	session, err := h.authService.Login(ctx, c.Sender().ID, email, password)
	if err != nil {
		if errors.Is(err, errorz.ErrInvalidCredentials) {
			h.logger.Infof("(user: %d) invalid credentials", c.Sender().ID)
			return c.Send(
				h.layout.Text(c, "invalid_credentials"),
				h.layout.Markup(c, "auth:menu"),
			)
		}
		h.logger.Errorf("(user: %d) error while login: %v", c.Sender().ID, err)
		return c.Send(
			h.layout.Text(c, "technical_issues", err.Error()),
			h.layout.Markup(c, "auth:menu"),
		)
	}

	h.logger.Infof("(user: %d) logged in as %s", c.Sender().ID, session.User.Email)
	return c.Send(
		h.layout.Text(c, "main_menu_text", session.User.FullName()),
		h.layout.Markup(c, "mainMenu:menu"),
	)
}

func (h Handler) logout(c tele.Context) error {
	ctx := api.WithAdmin(context.Background(), c.Sender().ID)
	if err := h.authService.Logout(ctx, c.Sender().ID); err != nil {
		h.logger.Errorf("(user: %d) error while logout: %v", c.Sender().ID, err)
		return c.Edit(
			h.layout.Text(c, "technical_issues", err.Error()),
			h.layout.Markup(c, "core:hide"),
		)
	}

	h.logger.Infof("(user: %d) logged out", c.Sender().ID)
	return c.Edit(
		h.layout.Text(c, "logout_success"),
		h.layout.Markup(c, "auth:menu"),
	)
}

func (h Handler) collect(
	c tele.Context,
	inputCollector *collector.MessageCollector,
	promptKey, invalidKey string,
	valid func(string, map[string]interface{}) bool,
) (string, bool) {
	for {
		message, canceled, errGet := h.input.Get(context.Background(), c.Sender().ID, 0)
		if message != nil {
			inputCollector.Collect(message)
		}
		switch {
		case canceled:
			_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true, ExcludeLast: true})
			return "", true
		case errGet != nil:
			h.logger.Errorf("(user: %d) error while %s: %v", c.Sender().ID, promptKey, errGet)
			_ = inputCollector.Send(c,
				h.layout.Text(c, "input_error", h.layout.Text(c, promptKey)),
				h.layout.Markup(c, "auth:back"),
			)
		case !valid(message.Text, nil):
			_ = inputCollector.Send(c,
				h.layout.Text(c, invalidKey),
				h.layout.Markup(c, "auth:back"),
			)
		default:
			return message.Text, false
		}
	}
}

func (h Handler) authMenu(c tele.Context) error {
	return c.Edit(
		h.layout.Text(c, "auth_required"),
		h.layout.Markup(c, "auth:menu"),
	)
}

func (h Handler) AuthSetup(group *tele.Group) {
	group.Handle("/start", h.start)
	group.Handle(h.layout.Callback("auth:login"), h.login)
	group.Handle(h.layout.Callback("auth:logout"), h.logout)
	group.Handle(h.layout.Callback("auth:back"), h.authMenu)
}
