package rates

import (
	"context"

	"kursbot/internal/domain"
)

// Provider fetches a fresh currency snapshot from an external source.
// Implementations are stateless; every call performs a new fetch.
type Provider interface {
	Fetch(ctx context.Context) (domain.RateSnapshot, error)
}
