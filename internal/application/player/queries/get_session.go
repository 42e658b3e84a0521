package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/arcade-go/internal/application/common"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
)

// GetSessionQuery represents a query to get a session by ID or player name
type GetSessionQuery struct {
	SessionID  string // Optional: get by session ID
	PlayerName string // Optional: get by player name
}

// GetSessionResponse represents the result of getting a session
type GetSessionResponse struct {
	Session *player.Session
}

// GetSessionHandler handles the GetSession query
type GetSessionHandler struct {
	sessionRepo player.SessionRepository
}

// NewGetSessionHandler creates a new GetSessionHandler
func NewGetSessionHandler(sessionRepo player.SessionRepository) *GetSessionHandler {
	return &GetSessionHandler{
		sessionRepo: sessionRepo,
	}
}

// Handle executes the GetSession query
func (h *GetSessionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetSessionQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetSessionQuery")
	}

	if query.SessionID == "" && query.PlayerName == "" {
		return nil, fmt.Errorf("either session_id or player_name must be provided")
	}

	var session *player.Session
	var err error

	// Priority: SessionID > PlayerName
	if query.SessionID != "" {
		session, err = h.sessionRepo.FindByID(ctx, query.SessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to find session by ID: %w", err)
		}
	} else {
		session, err = h.sessionRepo.FindByPlayerName(ctx, query.PlayerName)
		if err != nil {
			return nil, fmt.Errorf("failed to find session by player name: %w", err)
		}
	}

	return &GetSessionResponse{
		Session: session,
	}, nil
}
