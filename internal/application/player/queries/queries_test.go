package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/arcade-go/internal/application/player/queries"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
	"github.com/andrescamacho/arcade-go/test/helpers"
)

func TestGetSessionHandler_ByID(t *testing.T) {
	// Arrange
	repo := helpers.NewMockSessionRepository()
	session := player.NewSession("ellen")
	repo.AddSession(session)
	handler := queries.NewGetSessionHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetSessionQuery{SessionID: session.ID})

	// Assert
	require.NoError(t, err)
	response, ok := resp.(*queries.GetSessionResponse)
	require.True(t, ok)
	assert.Equal(t, session.ID, response.Session.ID)
}

func TestGetSessionHandler_ByPlayerName(t *testing.T) {
	repo := helpers.NewMockSessionRepository()
	session := player.NewSession("ellen")
	repo.AddSession(session)
	handler := queries.NewGetSessionHandler(repo)

	resp, err := handler.Handle(context.Background(), &queries.GetSessionQuery{PlayerName: "ellen"})

	require.NoError(t, err)
	response := resp.(*queries.GetSessionResponse)
	assert.Equal(t, session.ID, response.Session.ID)
}

func TestGetSessionHandler_RequiresIdentifier(t *testing.T) {
	repo := helpers.NewMockSessionRepository()
	handler := queries.NewGetSessionHandler(repo)

	_, err := handler.Handle(context.Background(), &queries.GetSessionQuery{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "either session_id or player_name")
}

func TestListSessionsHandler(t *testing.T) {
	// Arrange
	repo := helpers.NewMockSessionRepository()
	repo.AddSession(player.NewSession("a"))
	repo.AddSession(player.NewSession("b"))
	handler := queries.NewListSessionsHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.ListSessionsQuery{})

	// Assert
	require.NoError(t, err)
	response, ok := resp.(*queries.ListSessionsResponse)
	require.True(t, ok)
	assert.Len(t, response.Sessions, 2)
}

func TestListSessionsHandler_Empty(t *testing.T) {
	repo := helpers.NewMockSessionRepository()
	handler := queries.NewListSessionsHandler(repo)

	resp, err := handler.Handle(context.Background(), &queries.ListSessionsQuery{})

	require.NoError(t, err)
	response := resp.(*queries.ListSessionsResponse)
	assert.Empty(t, response.Sessions)
}
