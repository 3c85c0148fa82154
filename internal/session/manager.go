package session

import (
	"sync"
	"time"
)

// Manager holds live sessions keyed by their opaque token. Sessions are
// in-memory only and do not survive a restart.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
	now      func() time.Time
}

// NewManager creates a Manager. Sessions idle longer than idleTTL are dropped
// on the next lookup sweep; zero disables expiry.
func NewManager(idleTTL time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Get returns the session for token, refreshing its idle timer.
func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	s, ok := m.sessions[token]
	if !ok {
		return nil, false
	}
	if m.expired(s, now) {
		delete(m.sessions, token)
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

// Create starts a fresh session in the login state.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	s := newSession(now)
	m.sessions[s.ID] = s
	return s
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.idleTTL > 0 && now.Sub(s.lastSeen) > m.idleTTL
}

func (m *Manager) sweep(now time.Time) {
	for token, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, token)
		}
	}
}
