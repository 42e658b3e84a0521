package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/arcade-go/internal/application/common"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
)

// UpgradeLivesCommand represents a command to add lives to a session
type UpgradeLivesCommand struct {
	SessionID string
	Amount    int
}

// UpgradeLivesResponse represents the result of upgrading lives
type UpgradeLivesResponse struct {
	Session *player.Session
}

// UpgradeLivesHandler handles the UpgradeLives command
type UpgradeLivesHandler struct {
	sessionRepo player.SessionRepository
}

// NewUpgradeLivesHandler creates a new UpgradeLivesHandler
func NewUpgradeLivesHandler(sessionRepo player.SessionRepository) *UpgradeLivesHandler {
	return &UpgradeLivesHandler{
		sessionRepo: sessionRepo,
	}
}

// Handle executes the UpgradeLives command
func (h *UpgradeLivesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpgradeLivesCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpgradeLivesCommand")
	}

	if cmd.SessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}

	session, err := h.sessionRepo.FindByID(ctx, cmd.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	// Domain errors (negative amount, unbound state) propagate untouched
	// so callers can match on the typed error
	upgrader := player.NewLivesUpgrader(session.State)
	if err := upgrader.UpgradeLives(cmd.Amount); err != nil {
		return nil, err
	}

	if err := h.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &UpgradeLivesResponse{
		Session: session,
	}, nil
}
