package repository

import (
	"kursbot/internal/domain"
)

// ProfileRepository defines profile data operations
type ProfileRepository interface {
	// Exists reports whether a profile with this Telegram user ID is present.
	Exists(userID int64) (bool, error)
	// Create inserts a new profile. Returns false when a profile with the
	// same user ID already exists; the call performs no mutation in that case.
	Create(p domain.Profile) (bool, error)
	// Update overwrites the mutable fields of an existing profile.
	// Returns false when no profile with this user ID exists.
	Update(userID int64, firstName, username, lastName string) (bool, error)
	// ListAll returns all profiles in insertion order.
	ListAll() ([]domain.Profile, error)
}
