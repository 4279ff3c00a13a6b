package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/goalsync/goalsync/models"
	"github.com/goalsync/goalsync/stores"
)

// ChallengeCheckinResult reports one challenge check-in. NewlyCompleted is
// true on exactly the call where the goal threshold is first crossed;
// XPReward is non-zero only then.
type ChallengeCheckinResult struct {
	Checkins       int  `json:"checkins"`
	Goal           int  `json:"goal"`
	Completed      bool `json:"completed"`
	NewlyCompleted bool `json:"newly_completed"`
	XPReward       int  `json:"xp_reward"`
}

// ChallengeProgress is a participant's standing in one challenge.
type ChallengeProgress struct {
	ChallengeID     string  `json:"challenge_id"`
	Checkins        int     `json:"checkins"`
	Goal            int     `json:"goal"`
	ProgressPercent float64 `json:"progress_percent"`
	DaysRemaining   int     `json:"days_remaining"`
	Completed       bool    `json:"completed"`
}

// ChallengeRank is one leaderboard row. Higher check-in counts rank first;
// completed participants outrank equal-checkin unfinished ones; remaining
// ties keep join order.
type ChallengeRank struct {
	Rank            int     `json:"rank"`
	UserID          string  `json:"user_id"`
	Checkins        int     `json:"checkins"`
	ProgressPercent float64 `json:"progress_percent"`
	Completed       bool    `json:"completed"`
}

// ChallengeService drives the per-(challenge,user) state machine:
// not_joined → joined → check-ins → completed. Completion is terminal; later
// check-ins still count but never re-fire it.
type ChallengeService struct {
	parts        *stores.ParticipationStore
	clock        Clock
	achievements *AchievementService
	notify       *NotificationService
}

// NewChallengeService wires the tracker. achievements and notify may be nil
// in tests.
func NewChallengeService(parts *stores.ParticipationStore, clock Clock, achievements *AchievementService, notify *NotificationService) *ChallengeService {
	return &ChallengeService{parts: parts, clock: clock, achievements: achievements, notify: notify}
}

// Join creates the participation record. Unknown challenges fail with
// ErrNotFound, a duplicate join with ErrInvalidState. Joining also unlocks
// the challenger achievement (idempotent, so only the first join awards XP).
func (s *ChallengeService) Join(challengeID, userID string) (models.ChallengeDef, error) {
	def, ok := models.ChallengeByID(challengeID)
	if !ok {
		return models.ChallengeDef{}, fmt.Errorf("challenge %q: %w", challengeID, ErrNotFound)
	}
	if !s.parts.Join(challengeID, userID, s.clock.Now()) {
		return models.ChallengeDef{}, fmt.Errorf("already joined challenge %q: %w", challengeID, ErrInvalidState)
	}

	if s.achievements != nil {
		_, _ = s.achievements.Unlock(userID, "challenger")
	}
	if s.notify != nil {
		s.notify.ChallengeJoined(userID, def)
	}
	return def, nil
}

// Leave deletes the participation record. Fails with ErrInvalidState when the
// user never joined.
func (s *ChallengeService) Leave(challengeID, userID string) error {
	if _, ok := models.ChallengeByID(challengeID); !ok {
		return fmt.Errorf("challenge %q: %w", challengeID, ErrNotFound)
	}
	if !s.parts.Leave(challengeID, userID) {
		return fmt.Errorf("not joined challenge %q: %w", challengeID, ErrInvalidState)
	}
	return nil
}

// RecordCheckin increments the participant's counter and fires completion
// exactly once when the goal threshold is reached.
func (s *ChallengeService) RecordCheckin(challengeID, userID string) (ChallengeCheckinResult, error) {
	def, ok := models.ChallengeByID(challengeID)
	if !ok {
		return ChallengeCheckinResult{}, fmt.Errorf("challenge %q: %w", challengeID, ErrNotFound)
	}

	var res ChallengeCheckinResult
	p, joined := s.parts.Update(challengeID, userID, func(p *models.ChallengeParticipation) {
		p.Checkins++
		if p.Checkins >= def.GoalCheckins && !p.Completed {
			p.Completed = true
			res.NewlyCompleted = true
			res.XPReward = def.XPReward
		}
	})
	if !joined {
		return ChallengeCheckinResult{}, fmt.Errorf("not joined challenge %q: %w", challengeID, ErrInvalidState)
	}
	res.Checkins = p.Checkins
	res.Goal = def.GoalCheckins
	res.Completed = p.Completed

	if res.NewlyCompleted {
		if s.achievements != nil {
			_, _ = s.achievements.Unlock(userID, "challenge_champion")
		}
		if s.notify != nil {
			s.notify.ChallengeCompleted(userID, def)
		}
	}
	return res, nil
}

// Progress returns the participant's standing. Fails with ErrInvalidState
// when the user never joined.
func (s *ChallengeService) Progress(challengeID, userID string) (ChallengeProgress, error) {
	def, ok := models.ChallengeByID(challengeID)
	if !ok {
		return ChallengeProgress{}, fmt.Errorf("challenge %q: %w", challengeID, ErrNotFound)
	}
	p, joined := s.parts.Get(challengeID, userID)
	if !joined {
		return ChallengeProgress{}, fmt.Errorf("not joined challenge %q: %w", challengeID, ErrInvalidState)
	}

	elapsedDays := int(s.clock.Now().Sub(p.JoinedAt).Hours() / 24)
	daysRemaining := def.DurationDays - elapsedDays
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	return ChallengeProgress{
		ChallengeID:     challengeID,
		Checkins:        p.Checkins,
		Goal:            def.GoalCheckins,
		ProgressPercent: roundPercent(p.Checkins, def.GoalCheckins),
		DaysRemaining:   daysRemaining,
		Completed:       p.Completed,
	}, nil
}

// Leaderboard ranks every participant of the challenge.
func (s *ChallengeService) Leaderboard(challengeID string) ([]ChallengeRank, error) {
	def, ok := models.ChallengeByID(challengeID)
	if !ok {
		return nil, fmt.Errorf("challenge %q: %w", challengeID, ErrNotFound)
	}

	parts := s.parts.ByChallenge(challengeID)
	entries := make([]ChallengeRank, 0, len(parts))
	for _, p := range parts {
		entries = append(entries, ChallengeRank{
			UserID:          p.UserID,
			Checkins:        p.Checkins,
			ProgressPercent: roundPercent(p.Checkins, def.GoalCheckins),
			Completed:       p.Completed,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Checkins != entries[j].Checkins {
			return entries[i].Checkins > entries[j].Checkins
		}
		return entries[i].Completed && !entries[j].Completed
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Participation exposes a snapshot for read paths like the active-challenge
// listing.
func (s *ChallengeService) Participation(challengeID, userID string) (models.ChallengeParticipation, bool) {
	return s.parts.Get(challengeID, userID)
}

// ParticipantCount returns live joins for the challenge.
func (s *ChallengeService) ParticipantCount(challengeID string) int {
	return s.parts.CountByChallenge(challengeID)
}

// roundPercent is checkins/goal as a percentage rounded to one decimal.
func roundPercent(checkins, goal int) float64 {
	return math.Round(float64(checkins)/float64(goal)*1000) / 10
}
