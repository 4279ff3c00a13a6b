package stores

import (
	"sync"

	"github.com/goalsync/goalsync/models"
)

// CheckInStore is an append-only in-memory log of check-ins. Records are
// immutable once added; readers get copies in insertion order.
type CheckInStore struct {
	mu       sync.RWMutex
	checkins []models.CheckIn
}

// NewCheckInStore creates an empty store.
func NewCheckInStore() *CheckInStore {
	return &CheckInStore{}
}

// Add appends a check-in.
func (s *CheckInStore) Add(c models.CheckIn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkins = append(s.checkins, c)
}

// All returns a copy of every check-in in insertion order.
func (s *CheckInStore) All() []models.CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CheckIn, len(s.checkins))
	copy(out, s.checkins)
	return out
}

// ByUser returns a user's check-ins in insertion order.
func (s *CheckInStore) ByUser(userID string) []models.CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CheckIn
	for _, c := range s.checkins {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

// ByUsers returns check-ins belonging to any of the given users, in insertion
// order. Used by the feed to select self plus accepted friends.
func (s *CheckInStore) ByUsers(userIDs []string) []models.CheckIn {
	set := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		set[id] = true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CheckIn
	for _, c := range s.checkins {
		if set[c.UserID] {
			out = append(out, c)
		}
	}
	return out
}

// CountByUser returns how many check-ins the user has recorded.
func (s *CheckInStore) CountByUser(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.checkins {
		if c.UserID == userID {
			n++
		}
	}
	return n
}

// Count returns the total number of check-ins.
func (s *CheckInStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.checkins)
}
