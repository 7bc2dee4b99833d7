package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle         UserState = "idle"
	StateAwaitingEdit UserState = "awaiting_edit"
)

// StateData holds temporary data for user's current state.
// Not persisted; lives only for the lifetime of the process.
type StateData struct {
	State UserState
}
