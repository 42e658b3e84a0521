package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/arcade-go/internal/application/common"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
)

// ListSessionsQuery represents a query to list all sessions
type ListSessionsQuery struct{}

// ListSessionsResponse represents the result of listing sessions
type ListSessionsResponse struct {
	Sessions []*player.Session
}

// ListSessionsHandler handles the ListSessions query
type ListSessionsHandler struct {
	sessionRepo player.SessionRepository
}

// NewListSessionsHandler creates a new ListSessionsHandler
func NewListSessionsHandler(sessionRepo player.SessionRepository) *ListSessionsHandler {
	return &ListSessionsHandler{
		sessionRepo: sessionRepo,
	}
}

// Handle executes the ListSessions query
func (h *ListSessionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*ListSessionsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListSessionsQuery")
	}

	sessions, err := h.sessionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &ListSessionsResponse{
		Sessions: sessions,
	}, nil
}
