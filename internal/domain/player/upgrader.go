package player

import (
	"github.com/andrescamacho/arcade-go/internal/domain/shared"
)

// LivesUpgrader applies lives and level upgrades to a bound player state.
// The state is injected at construction; a zero-value upgrader has no state
// bound and every operation on it fails with a MissingAssociationError.
type LivesUpgrader struct {
	state *State
}

// NewLivesUpgrader creates an upgrader bound to the given state
func NewLivesUpgrader(state *State) *LivesUpgrader {
	return &LivesUpgrader{state: state}
}

// UpgradeLives increases lives by amount, clamped to MaximumLives.
// Negative amounts are rejected rather than applied as a downgrade.
func (u *LivesUpgrader) UpgradeLives(amount int) error {
	if u.state == nil {
		return shared.NewMissingAssociationError("upgrade lives")
	}
	if amount < 0 {
		return shared.NewInvalidValueError("amount", amount, "cannot be negative")
	}

	candidate := u.state.Lives() + amount
	if candidate > MaximumLives {
		candidate = MaximumLives
	}
	return u.state.SetLives(candidate)
}

// UpgradeLevel records exactly one more completed level
func (u *LivesUpgrader) UpgradeLevel() error {
	if u.state == nil {
		return shared.NewMissingAssociationError("upgrade level")
	}
	u.state.SetLevelsComplete(u.state.LevelsComplete() + 1)
	return nil
}
