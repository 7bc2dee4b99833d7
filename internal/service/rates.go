package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"kursbot/internal/domain"
	"kursbot/internal/rates"
)

// RatesUnavailableText is sent when the upstream feed cannot be used.
const RatesUnavailableText = "Не удалось получить курс валют"

// unavailableMark replaces a quote the feed did not carry
const unavailableMark = "—"

var currencyEmoji = map[string]string{
	"USD": "💵",
	"EUR": "💶",
	"CNY": "💴",
	"KZT": "🇰🇿",
}

// RatesService fetches and renders the daily currency snapshot
type RatesService struct {
	provider rates.Provider
	logger   *zap.Logger
}

// NewRatesService creates a new rates service
func NewRatesService(provider rates.Provider, logger *zap.Logger) *RatesService {
	return &RatesService{
		provider: provider,
		logger:   logger,
	}
}

// SnapshotText fetches a fresh snapshot and renders it for the user.
// Any provider failure degrades to RatesUnavailableText; errors never
// propagate past this boundary.
func (s *RatesService) SnapshotText(ctx context.Context) string {
	snapshot, err := s.provider.Fetch(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch currency rates", zap.Error(err))
		return RatesUnavailableText
	}

	return renderSnapshot(snapshot)
}

// renderSnapshot formats the four-currency layout. Every code gets a
// line even when its quote is missing, so the layout stays stable.
func renderSnapshot(snapshot domain.RateSnapshot) string {
	var b strings.Builder
	b.WriteString("💱 Курс валют:\n")

	for _, code := range domain.CurrencyCodes {
		b.WriteString("\n")
		b.WriteString(currencyEmoji[code])
		b.WriteString(" ")
		b.WriteString(code)
		b.WriteString(": ")
		if value, ok := snapshot.Quote(code); ok {
			b.WriteString(fmt.Sprintf("%.2f", value))
		} else {
			b.WriteString(unavailableMark)
		}
		b.WriteString(" ₽")
	}

	return b.String()
}
