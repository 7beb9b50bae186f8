// Package admin implements every panel section: catalog CRUD, the club
// approval lifecycle, membership overrides, mass notifications, support
// tickets, user management and PDF reports.
package admin

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/nlypage/intele"
	"github.com/nlypage/intele/collector"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/herbalife-clubes/admin-bot/cmd/bot"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/api"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/database/redis/sessions"
	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
	"github.com/herbalife-clubes/admin-bot/internal/domain/service"
	"github.com/herbalife-clubes/admin-bot/pkg/logger/types"
)

const pageSize = 10

type Handler struct {
	layout   *layout.Layout
	logger   *types.Logger
	bot      *bot.Bot
	input    *intele.InputManager
	sessions *sessions.Storage

	clubService         *service.ClubService
	hubService          *service.HubService
	productService      *service.ProductService
	tierService         *service.TierService
	achievementService  *service.AchievementService
	membershipService   *service.MembershipService
	eventService        *service.EventService
	notificationService *service.NotificationService
	supportService      *service.SupportService
	userService         *service.UserService
	attendanceService   *service.AttendanceService
	orderService        *service.OrderService
	reportService       *service.ReportService
}

func New(b *bot.Bot) *Handler {
	clubService := service.NewClubService(api.NewClubStorage(b.API))
	membershipService := service.NewMembershipService(api.NewMembershipStorage(b.API))
	orderService := service.NewOrderService(api.NewOrderStorage(b.API))
	attendanceService := service.NewAttendanceService(api.NewAttendanceStorage(b.API))

	return &Handler{
		layout:   b.Layout,
		logger:   b.Logger,
		bot:      b,
		input:    b.Input,
		sessions: b.Redis.Sessions,

		clubService:         clubService,
		hubService:          service.NewHubService(api.NewHubStorage(b.API)),
		productService:      service.NewProductService(api.NewProductStorage(b.API)),
		tierService:         service.NewTierService(api.NewTierStorage(b.API)),
		achievementService:  service.NewAchievementService(api.NewAchievementStorage(b.API)),
		membershipService:   membershipService,
		eventService:        service.NewEventService(api.NewEventStorage(b.API)),
		notificationService: service.NewNotificationService(api.NewNotificationStorage(b.API)),
		supportService:      service.NewSupportService(api.NewSupportStorage(b.API)),
		userService:         service.NewUserService(api.NewUserStorage(b.API)),
		attendanceService:   attendanceService,
		orderService:        orderService,
		reportService: service.NewReportService(
			clubService,
			membershipService,
			orderService,
			attendanceService,
			api.NewReportStorage(b.API),
		),
	}
}

// ctx binds the acting admin so the api client can resolve their token.
func (h Handler) ctx(c tele.Context) context.Context {
	return api.WithAdmin(context.Background(), c.Sender().ID)
}

// profile returns the backend identity of the acting admin.
func (h Handler) profile(c tele.Context) (*entity.User, error) {
	profile, err := h.sessions.Profile(h.ctx(c), c.Sender().ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errorz.ErrSessionExpired
	}
	return profile, nil
}

func (h Handler) sendError(c tele.Context, err error, markup *tele.ReplyMarkup) error {
	if errors.Is(err, errorz.ErrSessionExpired) {
		return c.Send(
			h.layout.Text(c, "session_expired"),
			h.layout.Markup(c, "auth:menu"),
		)
	}
	return c.Send(
		h.layout.Text(c, "technical_issues", err.Error()),
		markup,
	)
}

func (h Handler) editError(c tele.Context, err error, markup *tele.ReplyMarkup) error {
	if errors.Is(err, errorz.ErrSessionExpired) {
		return c.Edit(
			h.layout.Text(c, "session_expired"),
			h.layout.Markup(c, "auth:menu"),
		)
	}
	return c.Edit(
		h.layout.Text(c, "technical_issues", err.Error()),
		markup,
	)
}

// collectInput loops until a message passes valid or the flow is canceled
// with a back button. The caller shows the first prompt itself.
func (h Handler) collectInput(
	c tele.Context,
	inputCollector *collector.MessageCollector,
	promptKey, invalidKey string,
	markup *tele.ReplyMarkup,
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
				markup,
			)
		case !valid(message.Text, nil):
			_ = inputCollector.Send(c,
				h.layout.Text(c, invalidKey),
				markup,
			)
		default:
			return message.Text, false
		}
	}
}

const skipToken = "-"

// optional wraps a validator so the skip token passes.
func optional(valid func(string, map[string]interface{}) bool) func(string, map[string]interface{}) bool {
	return func(value string, params map[string]interface{}) bool {
		return value == skipToken || valid(value, params)
	}
}

func skipValue(value string) string {
	if value == skipToken {
		return ""
	}
	return value
}

// callbackIDPage splits "<id> <page>" callback payloads.
func callbackIDPage(c tele.Context) (int64, string, error) {
	parts := strings.Split(c.Callback().Data, " ")
	if len(parts) != 2 {
		return 0, "", errorz.ErrInvalidCallbackData
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", errorz.ErrInvalidCallbackData
	}
	return id, parts[1], nil
}

func callbackID(c tele.Context) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Callback().Data), 10, 64)
	if err != nil {
		return 0, errorz.ErrInvalidCallbackData
	}
	return id, nil
}

// parsePage reads the page from callback data, defaulting to 0 for the
// section entry callbacks that carry no payload.
func parsePage(data string) int {
	p, err := strconv.Atoi(strings.TrimSpace(data))
	if err != nil || p < 0 {
		return 0
	}
	return p
}

func pageOf[T any](items []T, page int) []T {
	start := page * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func pagesCount(total int) int {
	if total == 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// pager appends prev/counter/next plus a back-to-menu row to the list rows.
func (h Handler) pager(c tele.Context, markup *tele.ReplyMarkup, rows []tele.Row, section string, page, total int) {
	pages := pagesCount(total)
	prevPage := page - 1
	if page == 0 {
		prevPage = pages - 1
	}
	nextPage := page + 1
	if nextPage >= pages {
		nextPage = 0
	}

	rows = append(rows, markup.Row(
		*h.layout.Button(c, section+":prev_page", struct{ Page int }{Page: prevPage}),
		*h.layout.Button(c, "core:page_counter", struct {
			Page       int
			PagesCount int
		}{Page: page + 1, PagesCount: pages}),
		*h.layout.Button(c, section+":next_page", struct{ Page int }{Page: nextPage}),
	))
	rows = append(rows, markup.Row(*h.layout.Button(c, "mainMenu:back")))
	markup.Inline(rows...)
}

func (h Handler) AdminSetup(group *tele.Group) {
	// Clubs
	group.Handle(h.layout.Callback("mainMenu:clubs"), h.clubsList)
	group.Handle(h.layout.Callback("admin:clubs:prev_page"), h.clubsList)
	group.Handle(h.layout.Callback("admin:clubs:next_page"), h.clubsList)
	group.Handle(h.layout.Callback("admin:clubs:back"), h.clubsList)
	group.Handle(h.layout.Callback("admin:clubs:club"), h.clubMenu)
	group.Handle(h.layout.Callback("admin:club:back"), h.clubMenu)
	group.Handle(h.layout.Callback("admin:clubs:create"), h.createClub)
	group.Handle(h.layout.Callback("admin:club:edit"), h.editClub)
	group.Handle(h.layout.Callback("admin:club:approve"), h.approveClub)
	group.Handle(h.layout.Callback("admin:club:confirm_approve"), h.confirmApproveClub)
	group.Handle(h.layout.Callback("admin:club:reject"), h.rejectClub)
	group.Handle(h.layout.Callback("admin:club:activate"), h.activateClub)
	group.Handle(h.layout.Callback("admin:club:confirm_activate"), h.confirmActivateClub)
	group.Handle(h.layout.Callback("admin:club:deactivate"), h.deactivateClub)
	group.Handle(h.layout.Callback("admin:club:confirm_deactivate"), h.confirmDeactivateClub)
	group.Handle(h.layout.Callback("admin:club:members"), h.clubMembers)

	// Hubs
	group.Handle(h.layout.Callback("mainMenu:hubs"), h.hubsList)
	group.Handle(h.layout.Callback("admin:hubs:prev_page"), h.hubsList)
	group.Handle(h.layout.Callback("admin:hubs:next_page"), h.hubsList)
	group.Handle(h.layout.Callback("admin:hubs:back"), h.hubsList)
	group.Handle(h.layout.Callback("admin:hubs:hub"), h.hubMenu)
	group.Handle(h.layout.Callback("admin:hub:back"), h.hubMenu)
	group.Handle(h.layout.Callback("admin:hubs:create"), h.createHub)
	group.Handle(h.layout.Callback("admin:hub:edit"), h.editHub)
	group.Handle(h.layout.Callback("admin:hub:activate"), h.activateHub)
	group.Handle(h.layout.Callback("admin:hub:deactivate"), h.deactivateHub)
	group.Handle(h.layout.Callback("admin:hub:confirm_deactivate"), h.confirmDeactivateHub)

	// Products
	group.Handle(h.layout.Callback("mainMenu:products"), h.productsList)
	group.Handle(h.layout.Callback("admin:products:prev_page"), h.productsList)
	group.Handle(h.layout.Callback("admin:products:next_page"), h.productsList)
	group.Handle(h.layout.Callback("admin:products:back"), h.productsList)
	group.Handle(h.layout.Callback("admin:products:product"), h.productMenu)
	group.Handle(h.layout.Callback("admin:product:back"), h.productMenu)
	group.Handle(h.layout.Callback("admin:products:create"), h.createProductPicker)
	group.Handle(h.layout.Callback("admin:products:create_club"), h.createProduct)
	group.Handle(h.layout.Callback("admin:product:edit"), h.editProduct)
	group.Handle(h.layout.Callback("admin:product:activate"), h.activateProduct)
	group.Handle(h.layout.Callback("admin:product:deactivate"), h.deactivateProduct)
	group.Handle(h.layout.Callback("admin:product:confirm_deactivate"), h.confirmDeactivateProduct)

	// Membership tiers
	group.Handle(h.layout.Callback("mainMenu:tiers"), h.tiersList)
	group.Handle(h.layout.Callback("admin:tiers:back"), h.tiersList)
	group.Handle(h.layout.Callback("admin:tiers:tier"), h.tierMenu)
	group.Handle(h.layout.Callback("admin:tier:back"), h.tierMenu)
	group.Handle(h.layout.Callback("admin:tiers:create"), h.createTier)
	group.Handle(h.layout.Callback("admin:tier:edit"), h.editTier)
	group.Handle(h.layout.Callback("admin:tier:delete"), h.deleteTier)
	group.Handle(h.layout.Callback("admin:tier:confirm_delete"), h.confirmDeleteTier)

	// Achievements
	group.Handle(h.layout.Callback("mainMenu:achievements"), h.achievementsList)
	group.Handle(h.layout.Callback("admin:achievements:back"), h.achievementsList)
	group.Handle(h.layout.Callback("admin:achievements:achievement"), h.achievementMenu)
	group.Handle(h.layout.Callback("admin:achievement:back"), h.achievementMenu)
	group.Handle(h.layout.Callback("admin:achievements:create"), h.createAchievement)
	group.Handle(h.layout.Callback("admin:achievement:edit"), h.editAchievement)
	group.Handle(h.layout.Callback("admin:achievement:delete"), h.deleteAchievement)
	group.Handle(h.layout.Callback("admin:achievement:confirm_delete"), h.confirmDeleteAchievement)

	// Memberships
	group.Handle(h.layout.Callback("admin:memberships:membership"), h.membershipMenu)
	group.Handle(h.layout.Callback("admin:memberships:membership_back"), h.membershipMenu)
	group.Handle(h.layout.Callback("admin:club:members_back"), h.clubMembers)
	group.Handle(h.layout.Callback("admin:membership:suspend"), h.toggleMembership)
	group.Handle(h.layout.Callback("admin:membership:resume"), h.toggleMembership)
	group.Handle(h.layout.Callback("admin:membership:confirm_toggle"), h.confirmToggleMembership)
	group.Handle(h.layout.Callback("admin:membership:set_tier"), h.membershipTierPicker)
	group.Handle(h.layout.Callback("admin:membership:pick_tier"), h.setMembershipTier)
	group.Handle(h.layout.Callback("admin:membership:set_points"), h.setMembershipPoints)

	// Events
	group.Handle(h.layout.Callback("mainMenu:events"), h.eventsList)
	group.Handle(h.layout.Callback("admin:events:prev_page"), h.eventsList)
	group.Handle(h.layout.Callback("admin:events:next_page"), h.eventsList)
	group.Handle(h.layout.Callback("admin:events:back"), h.eventsList)
	group.Handle(h.layout.Callback("admin:events:event"), h.eventMenu)
	group.Handle(h.layout.Callback("admin:event:back"), h.eventMenu)
	group.Handle(h.layout.Callback("admin:events:create"), h.createEvent)
	group.Handle(h.layout.Callback("admin:event:edit"), h.editEvent)
	group.Handle(h.layout.Callback("admin:event:delete"), h.deleteEvent)
	group.Handle(h.layout.Callback("admin:event:confirm_delete"), h.confirmDeleteEvent)

	// Notifications
	group.Handle(h.layout.Callback("mainMenu:notifications"), h.notificationsMenu)
	group.Handle(h.layout.Callback("admin:notifications:back"), h.notificationsMenu)
	group.Handle(h.layout.Callback("admin:notifications:history"), h.notificationsHistory)
	group.Handle(h.layout.Callback("admin:notifications:history_hub"), h.hubHistoryPicker)
	group.Handle(h.layout.Callback("admin:notifications:hub_history"), h.notificationsHistoryByHub)
	group.Handle(h.layout.Callback("admin:notifications:history_club"), h.clubHistoryPicker)
	group.Handle(h.layout.Callback("admin:notifications:club_history"), h.notificationsHistoryByClub)
	group.Handle(h.layout.Callback("admin:notifications:send_global"), h.sendGlobalNotification)
	group.Handle(h.layout.Callback("admin:notifications:send_hub"), h.hubNotificationPicker)
	group.Handle(h.layout.Callback("admin:notifications:pick_hub"), h.sendHubNotification)
	group.Handle(h.layout.Callback("admin:notifications:send_club"), h.clubNotificationPicker)
	group.Handle(h.layout.Callback("admin:notifications:pick_club"), h.sendClubNotification)

	// Support
	group.Handle(h.layout.Callback("mainMenu:support"), h.ticketsList)
	group.Handle(h.layout.Callback("admin:tickets:prev_page"), h.ticketsList)
	group.Handle(h.layout.Callback("admin:tickets:next_page"), h.ticketsList)
	group.Handle(h.layout.Callback("admin:tickets:back"), h.ticketsList)
	group.Handle(h.layout.Callback("admin:tickets:ticket"), h.ticketMenu)
	group.Handle(h.layout.Callback("admin:ticket:back"), h.ticketMenu)
	group.Handle(h.layout.Callback("admin:ticket:respond"), h.respondTicket)
	group.Handle(h.layout.Callback("admin:ticket:status"), h.setTicketStatus)

	// Users
	group.Handle(h.layout.Callback("mainMenu:users"), h.usersList)
	group.Handle(h.layout.Callback("admin:users:prev_page"), h.usersList)
	group.Handle(h.layout.Callback("admin:users:next_page"), h.usersList)
	group.Handle(h.layout.Callback("admin:users:back"), h.usersList)
	group.Handle(h.layout.Callback("admin:users:user"), h.userMenu)
	group.Handle(h.layout.Callback("admin:user:back"), h.userMenu)
	group.Handle(h.layout.Callback("admin:user:deactivate"), h.deactivateUser)
	group.Handle(h.layout.Callback("admin:user:confirm_deactivate"), h.confirmDeactivateUser)
	group.Handle(h.layout.Callback("admin:user:membership"), h.userMembership)
	group.Handle(h.layout.Callback("admin:user:notifications"), h.userNotifications)

	// Attendance
	group.Handle(h.layout.Callback("mainMenu:attendance"), h.attendanceList)
	group.Handle(h.layout.Callback("admin:attendance:prev_page"), h.attendanceList)
	group.Handle(h.layout.Callback("admin:attendance:next_page"), h.attendanceList)

	// Reports
	group.Handle(h.layout.Callback("mainMenu:reports"), h.reportsMenu)
	group.Handle(h.layout.Callback("admin:reports:back"), h.reportsMenu)
	group.Handle(h.layout.Callback("admin:reports:memberships"), h.membershipReportPicker)
	group.Handle(h.layout.Callback("admin:reports:memberships_all"), h.membershipReport)
	group.Handle(h.layout.Callback("admin:reports:memberships_club"), h.membershipReport)
	group.Handle(h.layout.Callback("admin:reports:orders"), h.orderReportPicker)
	group.Handle(h.layout.Callback("admin:reports:orders_all"), h.orderReport)
	group.Handle(h.layout.Callback("admin:reports:orders_club"), h.orderReport)
	group.Handle(h.layout.Callback("admin:reports:attendance"), h.attendanceReportPicker)
	group.Handle(h.layout.Callback("admin:reports:attendance_all"), h.attendanceReport)
	group.Handle(h.layout.Callback("admin:reports:attendance_club"), h.attendanceReport)
	group.Handle(h.layout.Callback("admin:reports:clubs"), h.exportReport)
	group.Handle(h.layout.Callback("admin:reports:export"), h.exportReport)
}
