package handler

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"kursbot/internal/domain"
)

const (
	textAlreadyRegistered = "Вы уже зарегистрированы"
	textRegistered        = "Регистрация успешна!"
	textRegisterFirst     = "Сначала зарегистрируйтесь"
	textAccessDenied      = "Нет доступа"
	textStoreEmpty        = "База пуста"
	textGenericError      = "Произошла ошибка. Попробуйте позже."

	textEditPrompt = "Введите данные:\n\n" +
		"Имя, Username, Фамилия\n\n" +
		"Пример:\nИван, ivan123, Иванов"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// respond answers a callback query by editing the menu message.
// Falls back to sending a new message when the edit fails.
func (h *Handler) respond(c tele.Context, text string) error {
	if c.Callback() == nil {
		return c.Send(text)
	}

	if err := c.Edit(text); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return c.Respond()
		}

		h.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return c.Send(text)
	}
	return c.Respond()
}

// handleRegister creates a profile from the sender's Telegram identity.
// Registration is idempotent: repeating it never overwrites the profile.
func (h *Handler) handleRegister(c tele.Context) error {
	sender := c.Sender()

	created, err := h.profileService.Register(sender.ID, sender.FirstName, sender.LastName, sender.Username)
	if err != nil {
		h.logger.Error("Failed to register user",
			zap.Error(err),
			zap.Int64("user_id", sender.ID),
		)
		return h.respond(c, textGenericError)
	}

	if !created {
		return h.respond(c, textAlreadyRegistered)
	}

	h.logger.Info("User registered", zap.Int64("user_id", sender.ID))
	return h.respond(c, textRegistered)
}

// handleEdit arms the edit session when the sender is registered
func (h *Handler) handleEdit(c tele.Context) error {
	userID := c.Sender().ID

	registered, err := h.profileService.IsRegistered(userID)
	if err != nil {
		h.logger.Error("Failed to check registration",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return h.respond(c, textGenericError)
	}

	if !registered {
		return h.respond(c, textRegisterFirst)
	}

	h.SetState(userID, &domain.StateData{State: domain.StateAwaitingEdit})
	return h.respond(c, textEditPrompt)
}

// handleCurrency sends the current currency snapshot
func (h *Handler) handleCurrency(c tele.Context) error {
	return h.respond(c, h.ratesService.SnapshotText(context.Background()))
}

// handleShowAll sends the full roster to the administrator.
// Identity is re-checked here; the hidden menu button alone is not enough.
func (h *Handler) handleShowAll(c tele.Context) error {
	userID := c.Sender().ID

	if userID != h.adminID {
		h.logger.Info("Roster requested by non-admin", zap.Int64("user_id", userID))
		return h.respond(c, textAccessDenied)
	}

	profiles, err := h.profileService.ListAll()
	if err != nil {
		h.logger.Error("Failed to list profiles", zap.Error(err))
		return h.respond(c, textGenericError)
	}

	if len(profiles) == 0 {
		return h.respond(c, textStoreEmpty)
	}

	return h.respond(c, formatRoster(profiles))
}

// formatRoster renders one block per profile with a separator line
func formatRoster(profiles []domain.Profile) string {
	var b strings.Builder
	b.WriteString("Пользователи:\n\n")

	for _, p := range profiles {
		b.WriteString(fmt.Sprintf("ID: %d\n", p.UserID))
		b.WriteString(fmt.Sprintf("Имя: %s\n", p.FirstName))
		b.WriteString(fmt.Sprintf("Username: @%s\n", p.Username))
		b.WriteString(fmt.Sprintf("Фамилия: %s\n", p.LastName))
		b.WriteString(strings.Repeat("-", 20))
		b.WriteString("\n")
	}

	return b.String()
}

// handleCallback handles callbacks that did not match a registered Unique
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)

	switch data {
	case "register":
		return h.handleRegister(c)
	case "edit":
		return h.handleEdit(c)
	case "currency":
		return h.handleCurrency(c)
	case "show_all":
		return h.handleShowAll(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
