package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"kursbot/internal/domain"
	"kursbot/internal/service"
)

const (
	textUpdated       = "Данные обновлены"
	textInvalidFormat = "Неверный формат"
)

// handleText consumes free-text messages. Only a message that arrives
// while the sender's edit session is armed is interpreted; anything
// else is ignored without a reply. The session is cleared on every
// exit, valid or not, so a stale session never captures an unrelated
// message later.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)
	if state.State != domain.StateAwaitingEdit {
		return nil
	}

	h.ResetState(userID)

	input, ok := service.ParseEditInput(text)
	if !ok {
		return c.Send(textInvalidFormat)
	}

	updated, err := h.profileService.Update(userID, input)
	if err != nil {
		h.logger.Error("Failed to update profile",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(textGenericError)
	}
	if !updated {
		// The session should only have been armed for a registered
		// user; the store defends independently.
		h.logger.Warn("Update hit a missing profile", zap.Int64("user_id", userID))
		return c.Send(textGenericError)
	}

	h.logger.Info("Profile updated", zap.Int64("user_id", userID))
	return c.Send(textUpdated)
}
