package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/arcade-go/internal/application/player/commands"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
	"github.com/andrescamacho/arcade-go/internal/domain/shared"
	"github.com/andrescamacho/arcade-go/test/helpers"
)

func TestStartSessionHandler(t *testing.T) {
	// Arrange
	repo := helpers.NewMockSessionRepository()
	handler := commands.NewStartSessionHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &commands.StartSessionCommand{PlayerName: "ellen"})

	// Assert
	require.NoError(t, err)
	response, ok := resp.(*commands.StartSessionResponse)
	require.True(t, ok)
	assert.Equal(t, "ellen", response.Session.PlayerName)
	assert.Equal(t, 0, response.Session.State.Lives())

	saved, err := repo.FindByID(context.Background(), response.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, response.Session.ID, saved.ID)
}

func TestStartSessionHandler_RequiresPlayerName(t *testing.T) {
	repo := helpers.NewMockSessionRepository()
	handler := commands.NewStartSessionHandler(repo)

	_, err := handler.Handle(context.Background(), &commands.StartSessionCommand{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "player_name is required")
}

func TestUpgradeLivesHandler_AddsAndPersists(t *testing.T) {
	// Arrange
	repo := helpers.NewMockSessionRepository()
	session := player.NewSession("ellen")
	repo.AddSession(session)
	handler := commands.NewUpgradeLivesHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &commands.UpgradeLivesCommand{
		SessionID: session.ID,
		Amount:    2,
	})

	// Assert
	require.NoError(t, err)
	response, ok := resp.(*commands.UpgradeLivesResponse)
	require.True(t, ok)
	assert.Equal(t, 2, response.Session.State.Lives())

	saved, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.State.Lives())
}

func TestUpgradeLivesHandler_ClampsToMaximum(t *testing.T) {
	repo := helpers.NewMockSessionRepository()
	session := player.NewSession("ellen")
	repo.AddSession(session)
	handler := commands.NewUpgradeLivesHandler(repo)

	_, err := handler.Handle(context.Background(), &commands.UpgradeLivesCommand{
		SessionID: session.ID,
		Amount:    player.MaximumLives + 1,
	})

	require.NoError(t, err)
	assert.Equal(t, player.MaximumLives, session.State.Lives())
}

func TestUpgradeLivesHandler_NegativeAmountPropagatesTypedError(t *testing.T) {
	repo := helpers.NewMockSessionRepository()
	session := player.NewSession("ellen")
	repo.AddSession(session)
	handler := commands.NewUpgradeLivesHandler(repo)

	_, err := handler.Handle(context.Background(), &commands.UpgradeLivesCommand{
		SessionID: session.ID,
		Amount:    -1,
	})

	require.Error(t, err)
	var invalidErr *shared.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, 0, session.State.Lives())
}

func TestUpgradeLivesHandler_UnknownSession(t *testing.T) {
	repo := helpers.NewMockSessionRepository()
	handler := commands.NewUpgradeLivesHandler(repo)

	_, err := handler.Handle(context.Background(), &commands.UpgradeLivesCommand{
		SessionID: "missing",
		Amount:    1,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find session")
}

func TestCompleteLevelHandler_IncrementsAndPersists(t *testing.T) {
	// Arrange
	repo := helpers.NewMockSessionRepository()
	session := player.NewSession("ellen")
	repo.AddSession(session)
	handler := commands.NewCompleteLevelHandler(repo)

	// Act - twice
	_, err := handler.Handle(context.Background(), &commands.CompleteLevelCommand{SessionID: session.ID})
	require.NoError(t, err)
	_, err = handler.Handle(context.Background(), &commands.CompleteLevelCommand{SessionID: session.ID})
	require.NoError(t, err)

	// Assert
	saved, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.State.LevelsComplete())
}

func TestHandlers_RejectWrongRequestType(t *testing.T) {
	repo := helpers.NewMockSessionRepository()

	_, err := commands.NewStartSessionHandler(repo).Handle(context.Background(), &commands.CompleteLevelCommand{})
	assert.Error(t, err)

	_, err = commands.NewUpgradeLivesHandler(repo).Handle(context.Background(), &commands.StartSessionCommand{})
	assert.Error(t, err)

	_, err = commands.NewCompleteLevelHandler(repo).Handle(context.Background(), &commands.StartSessionCommand{})
	assert.Error(t, err)
}
