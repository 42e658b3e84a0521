package player

import (
	"fmt"

	"github.com/andrescamacho/arcade-go/internal/domain/shared"
)

// MaximumLives is the lives cap shared by every player state
const MaximumLives = 3

// State holds a player's progress within a single game session
type State struct {
	lives          int
	levelsComplete int
}

// NewState creates a fresh state with zero lives and zero completed levels
func NewState() *State {
	return &State{}
}

// RestoreState rebuilds a state from persisted values with validation
func RestoreState(lives, levelsComplete int) (*State, error) {
	if lives < 0 {
		return nil, shared.NewInvalidValueError("lives", lives, "cannot be negative")
	}
	if lives > MaximumLives {
		return nil, shared.NewInvalidValueError("lives", lives, fmt.Sprintf("cannot exceed maximum of %d", MaximumLives))
	}
	if levelsComplete < 0 {
		return nil, shared.NewInvalidValueError("levels_complete", levelsComplete, "cannot be negative")
	}
	return &State{lives: lives, levelsComplete: levelsComplete}, nil
}

// SetLives sets the lives count. Negative values are rejected; the upper
// bound is the upgrader's responsibility, not the setter's.
func (s *State) SetLives(n int) error {
	if n < 0 {
		return shared.NewInvalidValueError("lives", n, "cannot be negative")
	}
	s.lives = n
	return nil
}

// SetLevelsComplete sets the completed-level count unconditionally
func (s *State) SetLevelsComplete(n int) {
	s.levelsComplete = n
}

// Lives returns the current lives count
func (s *State) Lives() int {
	return s.lives
}

// LevelsComplete returns the current completed-level count
func (s *State) LevelsComplete() int {
	return s.levelsComplete
}

func (s *State) String() string {
	return fmt.Sprintf("State(lives=%d/%d, levels=%d)", s.lives, MaximumLives, s.levelsComplete)
}
