package testutil

import (
	"time"

	"go.uber.org/zap"

	"kursbot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestProfile creates a test profile
func NewTestProfile(userID int64, firstName, lastName, username string) domain.Profile {
	return domain.Profile{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		CreatedAt: time.Now(),
	}
}

// NewTestSnapshot creates a snapshot with the given quotes
func NewTestSnapshot(quotes map[string]float64) domain.RateSnapshot {
	return domain.RateSnapshot{Quotes: quotes}
}
