package service

import (
	"strings"

	"kursbot/internal/domain"
	"kursbot/internal/repository"
)

// EditInput is the parsed payload of a single edit message.
// The positional contract shown to the user is
// "Имя, Username, Фамилия" (first name, username, last name).
type EditInput struct {
	FirstName string
	Username  string
	LastName  string
}

// ParseEditInput splits a free-text edit message into exactly three
// comma-separated trimmed fields. Returns ok=false for any other shape.
func ParseEditInput(text string) (EditInput, bool) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return EditInput{}, false
	}

	return EditInput{
		FirstName: strings.TrimSpace(parts[0]),
		Username:  strings.TrimSpace(parts[1]),
		LastName:  strings.TrimSpace(parts[2]),
	}, true
}

// ProfileService handles registration and profile edits
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// IsRegistered checks if a profile exists for this user
func (s *ProfileService) IsRegistered(userID int64) (bool, error) {
	return s.profileRepo.Exists(userID)
}

// Register creates a profile from the transport-supplied identity.
// Returns false when the user is already registered; the call is
// idempotent and never overwrites an existing profile.
func (s *ProfileService) Register(userID int64, firstName, lastName, username string) (bool, error) {
	if username == "" {
		username = domain.DefaultUsername
	}

	return s.profileRepo.Create(domain.Profile{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
	})
}

// Update overwrites the mutable profile fields with a parsed edit payload.
// Returns false when no profile exists for this user.
func (s *ProfileService) Update(userID int64, in EditInput) (bool, error) {
	return s.profileRepo.Update(userID, in.FirstName, in.Username, in.LastName)
}

// ListAll returns every registered profile in insertion order
func (s *ProfileService) ListAll() ([]domain.Profile, error) {
	return s.profileRepo.ListAll()
}
