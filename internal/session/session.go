// Package session keeps the in-memory map of authorized operators.
// Authorization lives for the life of the process: no persistence, no expiry,
// removed only by explicit logout.
package session

import "sync"

// Store maps user IDs to their authorization state
type Store struct {
	mu    sync.RWMutex
	users map[int64]bool
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{users: make(map[int64]bool)}
}

// IsAuthorized reports whether the user has authorized. Unknown users are not.
func (s *Store) IsAuthorized(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[userID]
}

// Authorize marks the user as authorized
func (s *Store) Authorize(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = true
}

// Revoke removes the user's authorization (logout)
func (s *Store) Revoke(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
}
