package stores

import (
	"sync"
	"time"

	"github.com/goalsync/goalsync/models"
)

// participationRecord carries a per-key lock so challenge check-in increments
// cannot lose updates under parallel requests for the same pair.
type participationRecord struct {
	mu sync.Mutex
	p  models.ChallengeParticipation
}

// ParticipationStore holds one record per (challenge, user). The per-challenge
// order slice preserves join order for leaderboard tie-breaks.
type ParticipationStore struct {
	mu      sync.RWMutex
	records map[string]map[string]*participationRecord
	order   map[string][]string
}

// NewParticipationStore creates an empty store.
func NewParticipationStore() *ParticipationStore {
	return &ParticipationStore{
		records: map[string]map[string]*participationRecord{},
		order:   map[string][]string{},
	}
}

// Join creates a participation record. Returns false when the pair already
// has one.
func (s *ParticipationStore) Join(challengeID, userID string, joinedAt time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser, ok := s.records[challengeID]
	if !ok {
		byUser = map[string]*participationRecord{}
		s.records[challengeID] = byUser
	}
	if _, exists := byUser[userID]; exists {
		return false
	}
	byUser[userID] = &participationRecord{p: models.ChallengeParticipation{
		ChallengeID: challengeID,
		UserID:      userID,
		JoinedAt:    joinedAt,
	}}
	s.order[challengeID] = append(s.order[challengeID], userID)
	return true
}

// Leave deletes the pair's record. Returns false when it does not exist.
func (s *ParticipationStore) Leave(challengeID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser, ok := s.records[challengeID]
	if !ok {
		return false
	}
	if _, exists := byUser[userID]; !exists {
		return false
	}
	delete(byUser, userID)
	ids := s.order[challengeID]
	for i, id := range ids {
		if id == userID {
			s.order[challengeID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true
}

// Update runs fn on the pair's record under its per-key lock and returns the
// resulting snapshot. Returns false when the pair is not joined.
func (s *ParticipationStore) Update(challengeID, userID string, fn func(*models.ChallengeParticipation)) (models.ChallengeParticipation, bool) {
	s.mu.RLock()
	r := s.records[challengeID][userID]
	s.mu.RUnlock()
	if r == nil {
		return models.ChallengeParticipation{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.p)
	return r.p, true
}

// Get returns a snapshot of the pair's record.
func (s *ParticipationStore) Get(challengeID, userID string) (models.ChallengeParticipation, bool) {
	s.mu.RLock()
	r := s.records[challengeID][userID]
	s.mu.RUnlock()
	if r == nil {
		return models.ChallengeParticipation{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.p, true
}

// ByChallenge returns snapshots of every participant in join order.
func (s *ParticipationStore) ByChallenge(challengeID string) []models.ChallengeParticipation {
	s.mu.RLock()
	ids := append([]string(nil), s.order[challengeID]...)
	byUser := s.records[challengeID]
	recs := make([]*participationRecord, 0, len(ids))
	for _, id := range ids {
		if r := byUser[id]; r != nil {
			recs = append(recs, r)
		}
	}
	s.mu.RUnlock()

	out := make([]models.ChallengeParticipation, 0, len(recs))
	for _, r := range recs {
		r.mu.Lock()
		out = append(out, r.p)
		r.mu.Unlock()
	}
	return out
}

// CountByChallenge returns how many users joined the challenge.
func (s *ParticipationStore) CountByChallenge(challengeID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[challengeID])
}

// CompletedByUser returns how many challenges the user has completed.
func (s *ParticipationStore) CompletedByUser(userID string) int {
	s.mu.RLock()
	recs := make([]*participationRecord, 0)
	for _, byUser := range s.records {
		if r := byUser[userID]; r != nil {
			recs = append(recs, r)
		}
	}
	s.mu.RUnlock()

	n := 0
	for _, r := range recs {
		r.mu.Lock()
		if r.p.Completed {
			n++
		}
		r.mu.Unlock()
	}
	return n
}

// Count returns the total number of participation records.
func (s *ParticipationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, byUser := range s.records {
		n += len(byUser)
	}
	return n
}
