// Package memory provides in-memory store implementations. Interview
// sessions live here: they have the lifetime of the process and are not
// persisted across restarts.
package memory

import (
	"context"
	"sync"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.Session),
	}
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	// Copy the slices so callers cannot mutate stored state in place.
	session.Questions = append([]string(nil), session.Questions...)
	session.Answers = append([]domain.Answer(nil), session.Answers...)
	return &session, nil
}

// Put stores or replaces a session.
func (s *SessionStore) Put(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *session
	stored.Questions = append([]string(nil), session.Questions...)
	stored.Answers = append([]domain.Answer(nil), session.Answers...)
	s.sessions[session.ID] = stored
	return nil
}

// Delete removes a session. The boolean reports whether a session
// existed under that ID.
func (s *SessionStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok, nil
}
