package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionManager issues and resolves login-session tokens. It is an
// explicit object constructed at startup, not process-global state, and
// is safe for concurrent use.
type SessionManager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]sessionEntry

	now func() time.Time
}

type sessionEntry struct {
	userID    string
	expiresAt time.Time
}

// NewSessionManager creates a manager whose tokens expire after ttl.
func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		ttl:      ttl,
		sessions: make(map[string]sessionEntry),
		now:      time.Now,
	}
}

// Issue creates a fresh token for userID.
func (m *SessionManager) Issue(userID string) string {
	token := uuid.New().String()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = sessionEntry{
		userID:    userID,
		expiresAt: m.now().Add(m.ttl),
	}
	return token
}

// Resolve returns the user ID behind a token. Expired and unknown tokens
// resolve to false; expired ones are dropped on the way.
func (m *SessionManager) Resolve(token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[token]
	if !ok {
		return "", false
	}
	if m.now().After(entry.expiresAt) {
		delete(m.sessions, token)
		return "", false
	}
	return entry.userID, true
}

// Revoke drops a token at logout. Revoking an unknown token is a no-op.
func (m *SessionManager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
