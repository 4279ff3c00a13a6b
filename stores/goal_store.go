package stores

import (
	"sync"

	"github.com/goalsync/goalsync/models"
)

// GoalStore holds goals in memory. Update runs the mutation under the store
// lock so the check-in flow's read-modify-write on streak counters is atomic.
type GoalStore struct {
	mu    sync.RWMutex
	goals map[string]models.Goal
	order []string
}

// NewGoalStore creates an empty store.
func NewGoalStore() *GoalStore {
	return &GoalStore{goals: map[string]models.Goal{}}
}

// Put inserts or replaces a goal.
func (s *GoalStore) Put(g models.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[g.ID]; !ok {
		s.order = append(s.order, g.ID)
	}
	s.goals[g.ID] = g
}

// Get returns a goal by id.
func (s *GoalStore) Get(id string) (models.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.goals[id]
	return g, ok
}

// Update applies fn to the stored goal under the write lock and returns the
// updated copy. Returns false when the goal does not exist.
func (s *GoalStore) Update(id string, fn func(*models.Goal)) (models.Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[id]
	if !ok {
		return models.Goal{}, false
	}
	fn(&g)
	s.goals[id] = g
	return g, true
}

// Delete removes a goal. Returns false when absent.
func (s *GoalStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[id]; !ok {
		return false
	}
	delete(s.goals, id)
	for i, gid := range s.order {
		if gid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// ByUser returns the user's goals in creation order.
func (s *GoalStore) ByUser(userID string) []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Goal
	for _, id := range s.order {
		if g := s.goals[id]; g.UserID == userID {
			out = append(out, g)
		}
	}
	return out
}

// Count returns the number of goals.
func (s *GoalStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.goals)
}
