package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/arcade-go/internal/domain/player"
)

// GormSessionRepository implements SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// FindByID retrieves a session by ID
func (r *GormSessionRepository) FindByID(ctx context.Context, id string) (*player.Session, error) {
	var model SessionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("session not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find session: %w", result.Error)
	}

	return r.modelToSession(&model)
}

// FindByPlayerName retrieves the most recent session for a player
func (r *GormSessionRepository) FindByPlayerName(ctx context.Context, playerName string) (*player.Session, error) {
	var model SessionModel
	result := r.db.WithContext(ctx).
		Where("player_name = ?", playerName).
		Order("created_at DESC").
		First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("session not found for player: %s", playerName)
		}
		return nil, fmt.Errorf("failed to find session: %w", result.Error)
	}

	return r.modelToSession(&model)
}

// ListAll retrieves all sessions ordered by creation time
func (r *GormSessionRepository) ListAll(ctx context.Context) ([]*player.Session, error) {
	var models []SessionModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", result.Error)
	}

	sessions := make([]*player.Session, 0, len(models))
	for _, model := range models {
		s, err := r.modelToSession(&model)
		if err != nil {
			return nil, fmt.Errorf("invalid session %s in database: %w", model.ID, err)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

// Save persists a session (create or update)
func (r *GormSessionRepository) Save(ctx context.Context, session *player.Session) error {
	model := r.sessionToModel(session)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save session: %w", result.Error)
	}

	return nil
}

// modelToSession converts database model to domain session.
// Restoring the state re-checks the lives/levels invariants so a corrupted
// row surfaces as an error instead of an out-of-range state.
func (r *GormSessionRepository) modelToSession(model *SessionModel) (*player.Session, error) {
	state, err := player.RestoreState(model.Lives, model.LevelsComplete)
	if err != nil {
		return nil, err
	}

	return &player.Session{
		ID:         model.ID,
		PlayerName: model.PlayerName,
		State:      state,
		CreatedAt:  model.CreatedAt,
	}, nil
}

// sessionToModel converts domain session to database model
func (r *GormSessionRepository) sessionToModel(session *player.Session) *SessionModel {
	return &SessionModel{
		ID:             session.ID,
		PlayerName:     session.PlayerName,
		Lives:          session.State.Lives(),
		LevelsComplete: session.State.LevelsComplete(),
		CreatedAt:      session.CreatedAt,
	}
}
