package quiz

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jaki95/music-explorer/internal/domain"
)

// Manager keeps active sessions keyed by ID so that simultaneous users each
// get isolated quiz state.
type Manager struct {
	mu       sync.Mutex
	rounds   int
	sessions map[string]*Session
}

// NewManager creates a session manager playing the given number of rounds per
// session.
func NewManager(rounds int) *Manager {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	return &Manager{
		rounds:   rounds,
		sessions: make(map[string]*Session),
	}
}

// CreateSession starts a new session over a snapshot of the dataset.
func (m *Manager) CreateSession(dataset *domain.Dataset) (*Session, Prompt, error) {
	session := NewSession(uuid.NewString(), dataset.Tracks(), m.rounds)

	prompt, err := session.Start()
	if err != nil {
		return nil, Prompt{}, err
	}

	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()

	return session, prompt, nil
}

// GetSession retrieves a session by ID.
func (m *Manager) GetSession(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return session, nil
}

// DeleteSession discards a session, typically after its summary has been
// archived to the leaderboard.
func (m *Manager) DeleteSession(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.sessions, id)
	return nil
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
