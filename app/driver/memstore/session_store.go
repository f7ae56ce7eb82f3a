package memstore

import (
	"log/slog"
	"sync"

	"account-service/app/domain"
	"account-service/app/port"
)

// SessionStore is the in-memory implementation of port.SessionStore.
// It is the single owner of transient session state; mutations go
// through Mutate under the store lock, reads get copies.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	logger   *slog.Logger
}

// NewSessionStore creates an empty session store
func NewSessionStore(logger *slog.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		logger:   logger.With("component", "session_store"),
	}
}

var _ port.SessionStore = (*SessionStore)(nil)

// Get returns the session for a key, creating an uninitialized one
// when absent.
func (s *SessionStore) Get(sessionKey string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionKey]
	if !ok {
		session = domain.NewSession(sessionKey)
		s.sessions[sessionKey] = session
		s.logger.Debug("session created", "session_key", sessionKey)
	}

	return copySession(session)
}

// Mutate applies fn to the live session under the store lock and
// returns a snapshot of the result.
func (s *SessionStore) Mutate(sessionKey string, fn func(*domain.Session)) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionKey]
	if !ok {
		session = domain.NewSession(sessionKey)
		s.sessions[sessionKey] = session
	}

	fn(session)
	return copySession(session)
}

// Snapshot returns a copy of the session, or nil when absent
func (s *SessionStore) Snapshot(sessionKey string) *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionKey]
	if !ok {
		return nil
	}
	return copySession(session)
}

// Delete removes a session
func (s *SessionStore) Delete(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey)
}

// copySession returns a deep enough copy that callers cannot mutate
// store-owned state.
func copySession(session *domain.Session) *domain.Session {
	clone := *session
	if session.Identity != nil {
		identity := *session.Identity
		clone.Identity = &identity
	}
	if session.Profile != nil {
		profile := *session.Profile
		clone.Profile = &profile
	}
	return &clone
}
