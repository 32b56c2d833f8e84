package handler

import (
	"operkassa/internal/dialogue"
	"operkassa/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	rateService *service.RateService
	dialogues   *dialogue.Store
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	rateService *service.RateService,
	dialogues *dialogue.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		rateService: rateService,
		dialogues:   dialogues,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/auth", h.handleAuth)
	h.bot.Handle("/rates", h.handleRates)
	h.bot.Handle("/edit", h.handleEdit)
	h.bot.Handle("/logout", h.handleLogout)
	h.bot.Handle("/help", h.handleHelp)

	// Reply keyboard buttons
	h.bot.Handle(&btnRates, h.handleRates)
	h.bot.Handle(&btnEdit, h.handleEdit)
	h.bot.Handle(&btnUpdateAll, h.handleUpdateAll)
	h.bot.Handle(&btnHelp, h.handleHelp)
	h.bot.Handle(&btnAuth, h.handleAuth)
	h.bot.Handle(&btnLogout, h.handleLogout)

	// Free text drives the password and rate-edit dialogues
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Reply keyboard buttons
var (
	btnRates     = tele.Btn{Text: "📊 Текущие курсы"}
	btnEdit      = tele.Btn{Text: "✏️ Изменить курс"}
	btnUpdateAll = tele.Btn{Text: "🔄 Обновить все"}
	btnHelp      = tele.Btn{Text: "❓ Помощь"}
	btnAuth      = tele.Btn{Text: "🔐 Авторизация"}
	btnLogout    = tele.Btn{Text: "🚪 Выйти"}
)

// Inline buttons
var btnCancel = tele.Btn{
	Unique: "cancel",
	Text:   "❌ Отмена",
}

// mainMenuMarkup returns the main menu keyboard.
// The last button reflects the user's authorization state.
func mainMenuMarkup(authorized bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	sessionBtn := btnAuth
	if authorized {
		sessionBtn = btnLogout
	}

	menu.Reply(
		menu.Row(btnRates, btnEdit),
		menu.Row(btnUpdateAll, btnHelp),
		menu.Row(sessionBtn),
	)
	return menu
}
