package helpers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/andrescamacho/arcade-go/internal/domain/player"
)

// MockSessionRepository is a test double for SessionRepository interface
type MockSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*player.Session // sessionID -> session

	// SaveErr, when set, is returned by Save to simulate storage failures
	SaveErr error
}

// NewMockSessionRepository creates a new mock session repository
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{
		sessions: make(map[string]*player.Session),
	}
}

// AddSession seeds a session into the mock repository
func (m *MockSessionRepository) AddSession(s *player.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

// FindByID retrieves a session by ID
func (m *MockSessionRepository) FindByID(ctx context.Context, id string) (*player.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session not found: %s", id)
	}

	return s, nil
}

// FindByPlayerName retrieves the most recent session for a player
func (m *MockSessionRepository) FindByPlayerName(ctx context.Context, playerName string) (*player.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest *player.Session
	for _, s := range m.sessions {
		if s.PlayerName != playerName {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("session not found for player: %s", playerName)
	}

	return latest, nil
}

// Save stores a session
func (m *MockSessionRepository) Save(ctx context.Context, session *player.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

// ListAll returns all sessions ordered by creation time
func (m *MockSessionRepository) ListAll(ctx context.Context) ([]*player.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]*player.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return sessions, nil
}
