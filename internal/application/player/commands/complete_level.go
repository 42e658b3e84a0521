package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/arcade-go/internal/application/common"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
)

// CompleteLevelCommand represents a command to record a completed level
type CompleteLevelCommand struct {
	SessionID string
}

// CompleteLevelResponse represents the result of completing a level
type CompleteLevelResponse struct {
	Session *player.Session
}

// CompleteLevelHandler handles the CompleteLevel command
type CompleteLevelHandler struct {
	sessionRepo player.SessionRepository
}

// NewCompleteLevelHandler creates a new CompleteLevelHandler
func NewCompleteLevelHandler(sessionRepo player.SessionRepository) *CompleteLevelHandler {
	return &CompleteLevelHandler{
		sessionRepo: sessionRepo,
	}
}

// Handle executes the CompleteLevel command
func (h *CompleteLevelHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CompleteLevelCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CompleteLevelCommand")
	}

	if cmd.SessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}

	session, err := h.sessionRepo.FindByID(ctx, cmd.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	upgrader := player.NewLivesUpgrader(session.State)
	if err := upgrader.UpgradeLevel(); err != nil {
		return nil, err
	}

	if err := h.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &CompleteLevelResponse{
		Session: session,
	}, nil
}
