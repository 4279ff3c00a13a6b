package stores

import (
	"sync"

	"github.com/goalsync/goalsync/models"
)

// FriendshipStore holds the friendship graph in memory.
type FriendshipStore struct {
	mu          sync.RWMutex
	friendships map[string]models.Friendship
	order       []string
}

// NewFriendshipStore creates an empty store.
func NewFriendshipStore() *FriendshipStore {
	return &FriendshipStore{friendships: map[string]models.Friendship{}}
}

// Put inserts or replaces a friendship.
func (s *FriendshipStore) Put(f models.Friendship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.friendships[f.ID]; !ok {
		s.order = append(s.order, f.ID)
	}
	s.friendships[f.ID] = f
}

// Get returns a friendship by id.
func (s *FriendshipStore) Get(id string) (models.Friendship, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.friendships[id]
	return f, ok
}

// SetStatus updates the status of a friendship. Returns false when absent.
func (s *FriendshipStore) SetStatus(id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.friendships[id]
	if !ok {
		return false
	}
	f.Status = status
	s.friendships[id] = f
	return true
}

// Between returns the friendship connecting the two users in either
// direction, regardless of status.
func (s *FriendshipStore) Between(a, b string) (models.Friendship, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		f := s.friendships[id]
		if (f.RequesterID == a && f.AddresseeID == b) || (f.RequesterID == b && f.AddresseeID == a) {
			return f, true
		}
	}
	return models.Friendship{}, false
}

// AcceptedFriendIDs returns the ids of every user the given user is friends
// with (accepted in either direction), in insertion order.
func (s *FriendshipStore) AcceptedFriendIDs(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, id := range s.order {
		f := s.friendships[id]
		if f.Status != models.FriendshipAccepted {
			continue
		}
		switch userID {
		case f.RequesterID:
			out = append(out, f.AddresseeID)
		case f.AddresseeID:
			out = append(out, f.RequesterID)
		}
	}
	return out
}

// AcceptedFor returns accepted friendships involving the user.
func (s *FriendshipStore) AcceptedFor(userID string) []models.Friendship {
	return s.byUserAndStatus(userID, models.FriendshipAccepted, false)
}

// PendingFor returns pending requests addressed to the user.
func (s *FriendshipStore) PendingFor(userID string) []models.Friendship {
	return s.byUserAndStatus(userID, models.FriendshipPending, true)
}

func (s *FriendshipStore) byUserAndStatus(userID, status string, addresseeOnly bool) []models.Friendship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Friendship
	for _, id := range s.order {
		f := s.friendships[id]
		if f.Status != status {
			continue
		}
		if f.AddresseeID == userID || (!addresseeOnly && f.RequesterID == userID) {
			out = append(out, f)
		}
	}
	return out
}

// CountAcceptedFor returns how many accepted friends the user has.
func (s *FriendshipStore) CountAcceptedFor(userID string) int {
	return len(s.AcceptedFriendIDs(userID))
}
