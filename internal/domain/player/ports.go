package player

import "context"

// SessionRepository defines session persistence operations
type SessionRepository interface {
	FindByID(ctx context.Context, id string) (*Session, error)
	FindByPlayerName(ctx context.Context, playerName string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	ListAll(ctx context.Context) ([]*Session, error)
}
