package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/arcade-go/internal/application/common"
	"github.com/andrescamacho/arcade-go/internal/domain/player"
)

// StartSessionCommand represents a command to start a new game session
type StartSessionCommand struct {
	PlayerName string
}

// StartSessionResponse represents the result of starting a session
type StartSessionResponse struct {
	Session *player.Session
}

// StartSessionHandler handles the StartSession command
type StartSessionHandler struct {
	sessionRepo player.SessionRepository
}

// NewStartSessionHandler creates a new StartSessionHandler
func NewStartSessionHandler(sessionRepo player.SessionRepository) *StartSessionHandler {
	return &StartSessionHandler{
		sessionRepo: sessionRepo,
	}
}

// Handle executes the StartSession command
func (h *StartSessionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartSessionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *StartSessionCommand")
	}

	if cmd.PlayerName == "" {
		return nil, fmt.Errorf("player_name is required")
	}

	session := player.NewSession(cmd.PlayerName)

	if err := h.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &StartSessionResponse{
		Session: session,
	}, nil
}
