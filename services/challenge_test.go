package services

import (
	"errors"
	"testing"
	"time"

	"github.com/goalsync/goalsync/stores"
)

func newTestChallengeService() (*ChallengeService, *AchievementService) {
	clock := FixedClock{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	notify := NewNotificationService(stores.NewNotificationStore(), clock)
	achievements := NewAchievementService(stores.NewGameStateStore(), clock, notify)
	return NewChallengeService(stores.NewParticipationStore(), clock, achievements, notify), achievements
}

func TestChallengeJoinLifecycle(t *testing.T) {
	svc, achievements := newTestChallengeService()

	def, err := svc.Join("7day-fitness", "u1")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if def.ID != "7day-fitness" {
		t.Errorf("joined %s, want 7day-fitness", def.ID)
	}

	// joining twice is a state error
	if _, err := svc.Join("7day-fitness", "u1"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("double join err = %v, want ErrInvalidState", err)
	}

	// the first join unlocks challenger
	st := achievements.StateFor("u1")
	if !st.Unlocked("challenger") {
		t.Error("challenger not unlocked after first join")
	}

	if err := svc.Leave("7day-fitness", "u1"); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if err := svc.Leave("7day-fitness", "u1"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("double leave err = %v, want ErrInvalidState", err)
	}
}

func TestChallengeUnknownID(t *testing.T) {
	svc, _ := newTestChallengeService()
	if _, err := svc.Join("nope", "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("join err = %v, want ErrNotFound", err)
	}
	if _, err := svc.RecordCheckin("nope", "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("checkin err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Leaderboard("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("leaderboard err = %v, want ErrNotFound", err)
	}
}

func TestChallengeCheckinRequiresJoin(t *testing.T) {
	svc, _ := newTestChallengeService()
	if _, err := svc.RecordCheckin("7day-fitness", "u1"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("checkin err = %v, want ErrInvalidState", err)
	}
	if _, err := svc.Progress("7day-fitness", "u1"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("progress err = %v, want ErrInvalidState", err)
	}
}

func TestChallengeCompletionFiresOnce(t *testing.T) {
	svc, achievements := newTestChallengeService()
	// sunrise-club needs 5 check-ins
	if _, err := svc.Join("sunrise-club", "u1"); err != nil {
		t.Fatalf("join: %v", err)
	}

	for i := 1; i <= 4; i++ {
		res, err := svc.RecordCheckin("sunrise-club", "u1")
		if err != nil {
			t.Fatalf("checkin %d: %v", i, err)
		}
		if res.Completed || res.NewlyCompleted || res.XPReward != 0 {
			t.Fatalf("checkin %d completed early: %+v", i, res)
		}
	}

	fifth, err := svc.RecordCheckin("sunrise-club", "u1")
	if err != nil {
		t.Fatalf("fifth checkin: %v", err)
	}
	if !fifth.Completed || !fifth.NewlyCompleted || fifth.XPReward != 60 {
		t.Errorf("fifth checkin = %+v, want newly completed with 60 XP reward", fifth)
	}
	st := achievements.StateFor("u1")
	if !st.Unlocked("challenge_champion") {
		t.Error("challenge_champion not unlocked on completion")
	}

	sixth, err := svc.RecordCheckin("sunrise-club", "u1")
	if err != nil {
		t.Fatalf("sixth checkin: %v", err)
	}
	if !sixth.Completed || sixth.NewlyCompleted || sixth.XPReward != 0 {
		t.Errorf("sixth checkin = %+v, want completed but not newly", sixth)
	}
	if sixth.Checkins != 6 {
		t.Errorf("checkins = %d, want 6 (counting continues past the goal)", sixth.Checkins)
	}
}

func TestChallengeProgress(t *testing.T) {
	svc, _ := newTestChallengeService()
	if _, err := svc.Join("7day-fitness", "u1"); err != nil {
		t.Fatalf("join: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.RecordCheckin("7day-fitness", "u1"); err != nil {
			t.Fatalf("checkin: %v", err)
		}
	}

	prog, err := svc.Progress("7day-fitness", "u1")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if prog.Checkins != 3 || prog.Goal != 7 {
		t.Errorf("progress = %+v, want 3/7", prog)
	}
	if prog.ProgressPercent != 42.9 {
		t.Errorf("percent = %v, want 42.9", prog.ProgressPercent)
	}
	if prog.DaysRemaining != 7 {
		t.Errorf("days remaining = %d, want 7 (joined just now)", prog.DaysRemaining)
	}
}

func TestChallengeLeaderboardOrdering(t *testing.T) {
	svc, _ := newTestChallengeService()
	for _, u := range []string{"a", "b", "c"} {
		if _, err := svc.Join("sunrise-club", u); err != nil {
			t.Fatalf("join %s: %v", u, err)
		}
	}
	checkin := func(user string, n int) {
		for i := 0; i < n; i++ {
			if _, err := svc.RecordCheckin("sunrise-club", user); err != nil {
				t.Fatalf("checkin %s: %v", user, err)
			}
		}
	}
	checkin("a", 2)
	checkin("b", 5) // completes
	checkin("c", 2)

	ranks, err := svc.Leaderboard("sunrise-club")
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	wantOrder := []string{"b", "a", "c"} // tie between a and c keeps join order
	for i, want := range wantOrder {
		if ranks[i].UserID != want {
			t.Errorf("rank %d = %s, want %s", i+1, ranks[i].UserID, want)
		}
		if ranks[i].Rank != i+1 {
			t.Errorf("rank field = %d, want %d", ranks[i].Rank, i+1)
		}
	}
	if !ranks[0].Completed || ranks[0].ProgressPercent != 100 {
		t.Errorf("winner row = %+v, want completed at 100%%", ranks[0])
	}
}
