package services

import (
	"sort"
	"time"

	"github.com/goalsync/goalsync/models"
)

// LeaderboardEntry is one user's aggregated standing.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        string  `json:"user_id"`
	TotalScore    float64 `json:"total_score"`
	HighestStreak int     `json:"highest_streak"`
	TotalCheckins int     `json:"total_checkins"`
	Badges        []Badge `json:"badges"`
}

// Leaderboard is the ranked result. UserRank is the requesting user's 1-based
// position over the full ranking even when their entry fell outside the
// returned window; 0 when they have no check-ins at all.
type Leaderboard struct {
	Entries    []LeaderboardEntry `json:"entries"`
	UserRank   int                `json:"user_rank"`
	TotalUsers int                `json:"total_users"`
}

// BuildLeaderboard folds per-check-in integrity scores into a ranked global
// leaderboard. Pure over its inputs: recency decays from now, and no stored
// record is touched. Ties on total score keep first-seen order of the input
// sequence, which makes the ranking deterministic for a given record slice.
func BuildLeaderboard(records []models.CheckIn, requestingUserID string, limit int, now time.Time) Leaderboard {
	if limit <= 0 {
		limit = 10
	}

	byUser := map[string]*LeaderboardEntry{}
	badgeSeen := map[string]map[Badge]bool{}
	var order []string

	for _, c := range records {
		hours := now.Sub(c.CreatedAt).Hours()
		score := ComputeIntegrity(c.Streak, c.TotalDays, hours)

		entry, ok := byUser[c.UserID]
		if !ok {
			entry = &LeaderboardEntry{UserID: c.UserID}
			byUser[c.UserID] = entry
			badgeSeen[c.UserID] = map[Badge]bool{}
			order = append(order, c.UserID)
		}
		entry.TotalScore += score.Score
		entry.TotalCheckins++
		if c.Streak > entry.HighestStreak {
			entry.HighestStreak = c.Streak
		}
		if score.Badge != BadgeNone && !badgeSeen[c.UserID][score.Badge] {
			badgeSeen[c.UserID][score.Badge] = true
			entry.Badges = append(entry.Badges, score.Badge)
		}
	}

	ranked := make([]LeaderboardEntry, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byUser[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	result := Leaderboard{TotalUsers: len(ranked)}
	for i := range ranked {
		ranked[i].Rank = i + 1
		if ranked[i].UserID == requestingUserID {
			result.UserRank = ranked[i].Rank
		}
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	result.Entries = ranked
	return result
}
