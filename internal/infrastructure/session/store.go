// Package session provides the in-memory session turn log. Entries are
// appended in request-completion order and never mutated afterwards.
package session

import (
	"sync"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
)

// store is the in-memory implementation of domain.SessionStore. The
// mutex keeps the log structurally sound under concurrent appends;
// cross-request ordering for concurrent requests against the same
// session id is unspecified.
type store struct {
	mu       sync.RWMutex
	sessions map[string][]entity.ConversationTurn
}

// NewStore creates an empty session store.
func NewStore() domain.SessionStore {
	return &store{
		sessions: make(map[string][]entity.ConversationTurn),
	}
}

// Append adds a turn to the end of the session's log.
func (s *store) Append(sessionID string, turn entity.ConversationTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], turn)
}

// Recent returns up to limit most recent turns, oldest first. limit <= 0
// returns the whole log.
func (s *store) Recent(sessionID string, limit int) []entity.ConversationTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	out := make([]entity.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}

// History returns the full ordered log (empty slice if none).
func (s *store) History(sessionID string) []entity.ConversationTurn {
	return s.Recent(sessionID, 0)
}

// Reset empties the session's log.
func (s *store) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = []entity.ConversationTurn{}
}
