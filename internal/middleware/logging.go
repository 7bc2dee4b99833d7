package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every inbound update
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			var action string
			if cb := c.Callback(); cb != nil {
				action = cb.Unique
				if action == "" {
					action = cb.Data
				}
			} else {
				action = c.Text()
			}

			logger.Debug("Update received",
				zap.Int64("user_id", sender.ID),
				zap.String("action", action),
			)

			return next(c)
		}
	}
}
