package stores

import (
	"sync"
	"time"

	"github.com/goalsync/goalsync/models"
)

// gameRecord pairs a user's game state with its own mutex so read-modify-write
// sequences (unlock adds XP) cannot lose updates under parallel requests.
type gameRecord struct {
	mu    sync.Mutex
	state models.UserGameState
}

// GameStateStore holds per-user gamification state. The map-level RWMutex
// guards index access; each record carries a per-key lock for mutation.
type GameStateStore struct {
	mu      sync.RWMutex
	records map[string]*gameRecord
}

// NewGameStateStore creates an empty store.
func NewGameStateStore() *GameStateStore {
	return &GameStateStore{records: map[string]*gameRecord{}}
}

func (s *GameStateStore) record(userID string) *gameRecord {
	s.mu.RLock()
	r, ok := s.records[userID]
	s.mu.RUnlock()
	if ok {
		return r
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok = s.records[userID]; ok {
		return r
	}
	r = &gameRecord{state: models.UserGameState{
		UserID:     userID,
		UnlockedAt: map[string]time.Time{},
	}}
	s.records[userID] = r
	return r
}

// Update runs fn on the user's state under its per-key lock, creating the
// record lazily. The state passed to fn is the live record; fn must not
// retain it past the call.
func (s *GameStateStore) Update(userID string, fn func(*models.UserGameState)) {
	r := s.record(userID)
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.state)
}

// Get returns a deep copy of the user's state. Users with no unlocks yet get
// a zero-valued snapshot without materializing a record.
func (s *GameStateStore) Get(userID string) models.UserGameState {
	s.mu.RLock()
	r, ok := s.records[userID]
	s.mu.RUnlock()
	if !ok {
		return models.UserGameState{UserID: userID, UnlockedAt: map[string]time.Time{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneState(r.state)
}

func cloneState(st models.UserGameState) models.UserGameState {
	out := st
	out.UnlockedIDs = append([]string(nil), st.UnlockedIDs...)
	out.UnlockedAt = make(map[string]time.Time, len(st.UnlockedAt))
	for k, v := range st.UnlockedAt {
		out.UnlockedAt[k] = v
	}
	return out
}
