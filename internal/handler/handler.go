package handler

import (
	"sync"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"kursbot/internal/domain"
	"kursbot/internal/service"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	profileService *service.ProfileService
	ratesService   *service.RatesService
	adminID        int64
	logger         *zap.Logger

	// Per-user edit sessions (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	profileService *service.ProfileService,
	ratesService *service.RatesService,
	adminID int64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		profileService: profileService,
		ratesService:   ratesService,
		adminID:        adminID,
		logger:         logger,
		states:         make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnRegister, h.handleRegister)
	h.bot.Handle(&btnEdit, h.handleEdit)
	h.bot.Handle(&btnCurrency, h.handleCurrency)
	h.bot.Handle(&btnShowAll, h.handleShowAll)

	// Generic callback handler for callbacks without a matched Unique
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnRegister = tele.Btn{
		Unique: "register",
		Text:   "Регистрация",
	}
	btnEdit = tele.Btn{
		Unique: "edit",
		Text:   "Изменить данные",
	}
	btnCurrency = tele.Btn{
		Unique: "currency",
		Text:   "Валюта",
	}
	btnShowAll = tele.Btn{
		Unique: "show_all",
		Text:   "Все пользователи",
	}
)

// mainMenuMarkup returns the main menu keyboard.
// The roster button is shown only to the administrator; the show_all
// handler re-checks identity anyway, hiding the button is not a
// security boundary.
func mainMenuMarkup(isAdmin bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}

	rows := []tele.Row{
		menu.Row(btnRegister),
		menu.Row(btnEdit),
		menu.Row(btnCurrency),
	}
	if isAdmin {
		rows = append(rows, menu.Row(btnShowAll))
	}

	menu.Inline(rows...)
	return menu
}
