package stores

import (
	"sort"
	"strings"
	"sync"

	"github.com/goalsync/goalsync/models"
)

// UserStore is an in-memory user repository. Read-mostly; a store-level
// RWMutex is enough here.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
	order []string
}

// NewUserStore creates an empty store.
func NewUserStore() *UserStore {
	return &UserStore{users: map[string]models.User{}}
}

// Put inserts or replaces a user.
func (s *UserStore) Put(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		s.order = append(s.order, u.ID)
	}
	s.users[u.ID] = u
}

// Get returns a user by id.
func (s *UserStore) Get(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// ByUsername finds a user by exact username, case-insensitive.
func (s *UserStore) ByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		u := s.users[id]
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return models.User{}, false
}

// Search matches the query against username and display name, excluding the
// searching user. Results keep insertion order and are capped at limit.
func (s *UserStore) Search(query, selfID string, limit int) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.User
	for _, id := range s.order {
		if id == selfID {
			continue
		}
		u := s.users[id]
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.DisplayName), q) {
			out = append(out, u)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

// All returns every user sorted by id for stable output.
func (s *UserStore) All() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
