// Package dialogue keeps per-user dialogue state for the multi-step
// rate-edit and password flows. State is ephemeral: a process restart
// simply restarts any conversation mid-flow.
package dialogue

import (
	"sync"

	"operkassa/internal/domain"
)

// Store maps user IDs to their current dialogue step
type Store struct {
	mu     sync.RWMutex
	states map[int64]*domain.StateData
}

// NewStore creates an empty dialogue store
func NewStore() *Store {
	return &Store{states: make(map[int64]*domain.StateData)}
}

// Get returns the user's current state, idle if none
func (s *Store) Get(userID int64) *domain.StateData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, exists := s.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// Set sets the user's state
func (s *Store) Set(userID int64, state *domain.StateData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
}

// Reset returns the user to the idle state
func (s *Store) Reset(userID int64) {
	s.Set(userID, &domain.StateData{State: domain.StateIdle})
}
