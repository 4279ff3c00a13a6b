package models

import "time"

// UserGameState is the per-user gamification record: which achievements are
// unlocked, when, and the XP they added up to. Created lazily on first unlock
// and kept for the life of the process. TotalXP is strictly the sum of the
// points of UnlockedIDs; nothing else increments it.
type UserGameState struct {
	UserID      string               `json:"user_id"`
	UnlockedIDs []string             `json:"unlocked_ids"`
	TotalXP     int                  `json:"total_xp"`
	UnlockedAt  map[string]time.Time `json:"unlocked_at"`
}

// Unlocked reports whether the achievement id is already in the set.
func (s *UserGameState) Unlocked(achievementID string) bool {
	_, ok := s.UnlockedAt[achievementID]
	return ok
}

// ChallengeParticipation is one user's membership in one challenge. Completed
// flips true exactly once, the instant Checkins reaches the challenge goal,
// and never reverts. Deleted when the user leaves.
type ChallengeParticipation struct {
	ChallengeID string    `json:"challenge_id"`
	UserID      string    `json:"user_id"`
	JoinedAt    time.Time `json:"joined_at"`
	Checkins    int       `json:"checkins"`
	Completed   bool      `json:"completed"`
}
