package player

import (
	"time"

	"github.com/google/uuid"
)

// Session ties a named player to one run of game progress
type Session struct {
	ID         string
	PlayerName string
	State      *State
	CreatedAt  time.Time
}

// NewSession creates a session with a fresh state for the given player
func NewSession(playerName string) *Session {
	return &Session{
		ID:         uuid.New().String(),
		PlayerName: playerName,
		State:      NewState(),
		CreatedAt:  time.Now().UTC(),
	}
}
