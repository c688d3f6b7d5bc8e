package state

import "time"

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
)

// Entry is the stored record for one conversation.
type Entry[T any] struct {
	State     State
	Value     T
	HasValue  bool
	UpdatedAt time.Time
}

// Store keeps one Entry per conversation. Implementations must be safe for
// concurrent use by different conversations.
type Store[T any] interface {
	// Put overwrites the payload for id.
	Put(id int64, value T)
	// Get returns the payload for id; false means none was stored.
	Get(id int64) (T, bool)

	SetState(id int64, st State)
	GetState(id int64) State
	// InProgress reports whether id is in any state other than idle.
	InProgress(id int64) bool
	ClearState(id int64)

	// Len returns the number of conversations with an entry.
	Len() int
}
