package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/arcade-go/internal/adapters/persistence"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
	"github.com/andrescamacho/arcade-go/test/helpers"
)

func TestSessionRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSessionRepository(db)

	session := player.NewSession("ellen")
	require.NoError(t, session.State.SetLives(2))
	session.State.SetLevelsComplete(4)

	// Act - Save
	err := repo.Save(context.Background(), session)

	// Assert
	require.NoError(t, err)

	// Act - FindByID
	found, err := repo.FindByID(context.Background(), session.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, "ellen", found.PlayerName)
	assert.Equal(t, 2, found.State.Lives())
	assert.Equal(t, 4, found.State.LevelsComplete())
}

func TestSessionRepository_SaveIsUpsert(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSessionRepository(db)

	session := player.NewSession("ellen")
	require.NoError(t, repo.Save(context.Background(), session))

	// Act - mutate and save again under the same ID
	require.NoError(t, session.State.SetLives(1))
	session.State.SetLevelsComplete(1)
	err := repo.Save(context.Background(), session)

	// Assert
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.State.Lives())
	assert.Equal(t, 1, found.State.LevelsComplete())

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSessionRepository_FindByPlayerName_ReturnsMostRecent(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSessionRepository(db)

	older := player.NewSession("ellen")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := player.NewSession("ellen")

	require.NoError(t, repo.Save(context.Background(), older))
	require.NoError(t, repo.Save(context.Background(), newer))

	// Act
	found, err := repo.FindByPlayerName(context.Background(), "ellen")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, newer.ID, found.ID)
}

func TestSessionRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSessionRepository(db)

	// Act
	_, err := repo.FindByID(context.Background(), "no-such-id")

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")

	_, err = repo.FindByPlayerName(context.Background(), "nobody")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestSessionRepository_ListAll_OrderedByCreation(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSessionRepository(db)

	first := player.NewSession("a")
	first.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	second := player.NewSession("b")
	second.CreatedAt = time.Now().UTC().Add(-time.Hour)

	require.NoError(t, repo.Save(context.Background(), second))
	require.NoError(t, repo.Save(context.Background(), first))

	// Act
	all, err := repo.ListAll(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].PlayerName)
	assert.Equal(t, "b", all[1].PlayerName)
}

func TestSessionRepository_RejectsCorruptedRow(t *testing.T) {
	// Arrange - write an out-of-range lives value directly
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSessionRepository(db)

	model := &persistence.SessionModel{
		ID:         "corrupt",
		PlayerName: "ellen",
		Lives:      player.MaximumLives + 10,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, db.Create(model).Error)

	// Act
	_, err := repo.FindByID(context.Background(), "corrupt")

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot exceed maximum")
}
