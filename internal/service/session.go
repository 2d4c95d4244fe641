package service

import (
	"sync"

	"shopbot/internal/model"
)

// SessionStore remembers the most recent search filters per user so a
// follow-up quick reply ("increase budget") can reuse them. Reads and writes
// go through a lock; the process may serve concurrent requests.
//
// There is no TTL and no eviction: entries live for the process lifetime.
type SessionStore struct {
	mu   sync.RWMutex
	last map[int64]model.SavedFilters
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		last: make(map[int64]model.SavedFilters),
	}
}

// Save replaces the remembered filters for a user. The whole record is
// overwritten; price is never part of it.
func (s *SessionStore) Save(userID int64, filters model.SavedFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[userID] = filters
}

// Last returns the remembered filters for a user, if any. The entry is
// never cleared by reading it.
func (s *SessionStore) Last(userID int64) (model.SavedFilters, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.last[userID]
	return f, ok
}
