package services

import (
	"testing"
	"time"

	"github.com/goalsync/goalsync/models"
)

func lbCheckin(user string, streak, totalDays int, createdAt time.Time) models.CheckIn {
	return models.CheckIn{
		ID:        user + "-" + createdAt.Format("0102T15"),
		UserID:    user,
		Streak:    streak,
		TotalDays: totalDays,
		CreatedAt: createdAt,
	}
}

func TestBuildLeaderboardOrdering(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []models.CheckIn{
		lbCheckin("alice", 30, 30, now.Add(-1*time.Hour)),
		lbCheckin("bob", 5, 10, now.Add(-2*time.Hour)),
		lbCheckin("carol", 12, 15, now.Add(-3*time.Hour)),
	}

	board := BuildLeaderboard(records, "bob", 10, now)
	if board.TotalUsers != 3 {
		t.Fatalf("total users = %d, want 3", board.TotalUsers)
	}
	wantOrder := []string{"alice", "carol", "bob"}
	for i, want := range wantOrder {
		if board.Entries[i].UserID != want {
			t.Errorf("rank %d = %s, want %s", i+1, board.Entries[i].UserID, want)
		}
		if board.Entries[i].Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d", i, board.Entries[i].Rank, i+1)
		}
	}
	if board.UserRank != 3 {
		t.Errorf("user rank = %d, want 3", board.UserRank)
	}

	// same records in a different input order give the same ranking
	reversed := []models.CheckIn{records[2], records[1], records[0]}
	again := BuildLeaderboard(reversed, "bob", 10, now)
	for i := range wantOrder {
		if again.Entries[i].UserID != wantOrder[i] {
			t.Errorf("reversed input rank %d = %s, want %s", i+1, again.Entries[i].UserID, wantOrder[i])
		}
	}
}

func TestBuildLeaderboardTieBreakKeepsFirstSeen(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// identical inputs score identically; first-seen wins the tie
	records := []models.CheckIn{
		lbCheckin("first", 5, 5, now.Add(-1*time.Hour)),
		lbCheckin("second", 5, 5, now.Add(-1*time.Hour)),
	}
	board := BuildLeaderboard(records, "", 10, now)
	if board.Entries[0].UserID != "first" || board.Entries[1].UserID != "second" {
		t.Errorf("tie order = %s, %s; want first, second", board.Entries[0].UserID, board.Entries[1].UserID)
	}
}

func TestBuildLeaderboardUserRankBeyondLimit(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []models.CheckIn{
		lbCheckin("a", 50, 50, now),
		lbCheckin("b", 40, 40, now),
		lbCheckin("c", 30, 30, now),
		lbCheckin("d", 1, 30, now.Add(-60*time.Hour)),
	}

	board := BuildLeaderboard(records, "d", 2, now)
	if len(board.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(board.Entries))
	}
	if board.UserRank != 4 {
		t.Errorf("user rank = %d, want 4 (ranked over the full list)", board.UserRank)
	}
	if board.TotalUsers != 4 {
		t.Errorf("total users = %d, want 4", board.TotalUsers)
	}
}

func TestBuildLeaderboardAggregatesPerUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []models.CheckIn{
		lbCheckin("alice", 3, 10, now.Add(-1*time.Hour)),
		lbCheckin("alice", 4, 11, now.Add(-60*time.Hour)),
		lbCheckin("alice", 10, 10, now.Add(-2*time.Hour)),
	}
	board := BuildLeaderboard(records, "alice", 10, now)
	e := board.Entries[0]
	if e.TotalCheckins != 3 {
		t.Errorf("total checkins = %d, want 3", e.TotalCheckins)
	}
	if e.HighestStreak != 10 {
		t.Errorf("highest streak = %d, want 10", e.HighestStreak)
	}
	// badges dedupe: the 10/10 check-in is gold, the rest below bronze
	if len(e.Badges) != 1 || e.Badges[0] != BadgeGold {
		t.Errorf("badges = %v, want [gold]", e.Badges)
	}
}

func TestBuildLeaderboardEmpty(t *testing.T) {
	board := BuildLeaderboard(nil, "nobody", 10, time.Now())
	if len(board.Entries) != 0 || board.UserRank != 0 || board.TotalUsers != 0 {
		t.Errorf("empty board = %+v, want zero values", board)
	}
}
