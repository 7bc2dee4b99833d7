package domain

import "time"

// DefaultUsername is stored when the user has no public username.
const DefaultUsername = "нет"

// Profile represents one registered bot user
type Profile struct {
	ID        int64
	UserID    int64
	FirstName string
	LastName  string
	Username  string
	CreatedAt time.Time
}
