package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/arcade-go/internal/domain/player"
	"github.com/andrescamacho/arcade-go/internal/domain/shared"
)

func TestNewState_StartsAtZero(t *testing.T) {
	state := player.NewState()

	assert.Equal(t, 0, state.Lives())
	assert.Equal(t, 0, state.LevelsComplete())
}

func TestState_SetLives(t *testing.T) {
	state := player.NewState()

	err := state.SetLives(2)

	require.NoError(t, err)
	assert.Equal(t, 2, state.Lives())
}

func TestState_SetLives_NegativeRejected(t *testing.T) {
	state := player.NewState()

	err := state.SetLives(-1)

	require.Error(t, err)
	var invalidErr *shared.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, 0, state.Lives(), "failed set must not mutate state")
}

func TestState_SetLives_NoUpperBoundCheck(t *testing.T) {
	// Clamping is the upgrader's job, so the setter accepts values
	// above MaximumLives
	state := player.NewState()

	err := state.SetLives(player.MaximumLives + 5)

	require.NoError(t, err)
	assert.Equal(t, player.MaximumLives+5, state.Lives())
}

func TestState_SetLevelsComplete(t *testing.T) {
	state := player.NewState()

	state.SetLevelsComplete(7)

	assert.Equal(t, 7, state.LevelsComplete())
}

func TestRestoreState_Valid(t *testing.T) {
	state, err := player.RestoreState(2, 5)

	require.NoError(t, err)
	assert.Equal(t, 2, state.Lives())
	assert.Equal(t, 5, state.LevelsComplete())
}

func TestRestoreState_Invalid(t *testing.T) {
	tests := []struct {
		name           string
		lives          int
		levelsComplete int
	}{
		{"negative lives", -1, 0},
		{"lives above maximum", player.MaximumLives + 1, 0},
		{"negative levels", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := player.RestoreState(tt.lives, tt.levelsComplete)

			require.Error(t, err)
			assert.Nil(t, state)
			var invalidErr *shared.InvalidValueError
			assert.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestState_String(t *testing.T) {
	state, err := player.RestoreState(1, 2)
	require.NoError(t, err)

	assert.Equal(t, "State(lives=1/3, levels=2)", state.String())
}
