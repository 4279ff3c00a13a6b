package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/goalsync/goalsync/config"
	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (http.Handler, services.FixedClock) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("GS_GIN_MODE", "test")
	t.Setenv("GS_GIN_LOG_PATH", filepath.Join(t.TempDir(), "gin.log"))
	t.Setenv("GS_LOG_PATH", filepath.Join(t.TempDir(), "app.log"))

	clock := services.FixedClock{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	users := stores.NewUserStore()
	goals := stores.NewGoalStore()
	checkins := stores.NewCheckInStore()
	friends := stores.NewFriendshipStore()
	states := stores.NewGameStateStore()
	participations := stores.NewParticipationStore()
	notifications := stores.NewNotificationStore()
	stores.SeedDemo(users, goals, checkins, friends, states, participations, notifications, clock.Now())

	notify := services.NewNotificationService(notifications, clock)
	achievements := services.NewAchievementService(states, clock, notify)
	challenges := services.NewChallengeService(participations, clock, achievements, notify)

	return SetupRouter(Deps{
		Users:          users,
		Goals:          goals,
		Checkins:       checkins,
		Friends:        friends,
		Participations: participations,
		Notifications:  notifications,
		Achievements:   achievements,
		Challenges:     challenges,
		Notify:         notify,
		Clock:          clock,
	}), clock
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %s %s: %v (body %s)", method, path, err, w.Body.String())
	}
	return w, env
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)
	w, env := doJSON(t, h, http.MethodGet, "/health", nil)
	if w.Code != 200 || env.Code != 0 {
		t.Fatalf("health = %d/%d", w.Code, env.Code)
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	h, _ := newTestRouter(t)
	w, env := doJSON(t, h, http.MethodGet, "/api/v1/nope", nil)
	if w.Code != http.StatusNotFound || env.Code != 40400 {
		t.Fatalf("unknown route = %d/%d, want 404/40400", w.Code, env.Code)
	}
}

func TestGoalAndCheckinFlow(t *testing.T) {
	h, _ := newTestRouter(t)

	_, env := doJSON(t, h, http.MethodPost, "/api/v1/goals", map[string]string{
		"user_id": "user-ava",
		"title":   "Sketch Daily",
	})
	if env.Code != 0 {
		t.Fatalf("create goal failed: %+v", env)
	}
	var created struct {
		Goal struct {
			ID        string `json:"id"`
			Category  string `json:"category"`
			Frequency string `json:"frequency"`
		} `json:"goal"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode goal: %v", err)
	}
	if created.Goal.Category != "general" || created.Goal.Frequency != "daily" {
		t.Errorf("defaults = %s/%s, want general/daily", created.Goal.Category, created.Goal.Frequency)
	}

	_, env = doJSON(t, h, http.MethodPost, "/api/v1/checkins", map[string]string{
		"user_id": "user-ava",
		"goal_id": created.Goal.ID,
		"caption": "first sketch done",
	})
	if env.Code != 0 {
		t.Fatalf("checkin failed: %+v", env)
	}
	var result struct {
		Checkin struct {
			Streak int `json:"streak"`
		} `json:"checkin"`
		NewAchievements []struct {
			Achievement struct {
				ID string `json:"id"`
			} `json:"achievement"`
		} `json:"new_achievements"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode checkin: %v", err)
	}
	if result.Checkin.Streak != 1 {
		t.Errorf("streak = %d, want 1", result.Checkin.Streak)
	}
	if len(result.NewAchievements) != 1 || result.NewAchievements[0].Achievement.ID != "first_checkin" {
		t.Errorf("new achievements = %+v, want first_checkin", result.NewAchievements)
	}

	// check-in against someone else's goal is rejected
	_, env = doJSON(t, h, http.MethodPost, "/api/v1/checkins", map[string]string{
		"user_id": "user-noah",
		"goal_id": created.Goal.ID,
	})
	if env.Code != 40000 {
		t.Errorf("foreign goal checkin code = %d, want 40000", env.Code)
	}
}

func TestFeedShowsOnlyFriends(t *testing.T) {
	h, _ := newTestRouter(t)

	_, env := doJSON(t, h, http.MethodGet, "/api/v1/checkins/feed?user_id=demo-user", nil)
	if env.Code != 0 {
		t.Fatalf("feed failed: %+v", env)
	}
	var feed struct {
		Items []struct {
			UserID    string `json:"user_id"`
			TimeAgo   string `json:"time_ago"`
			Integrity struct {
				Score float64 `json:"score"`
				Badge string  `json:"badge"`
			} `json:"integrity"`
		} `json:"items"`
	}
	if err := json.Unmarshal(env.Data, &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if len(feed.Items) == 0 {
		t.Fatal("feed empty")
	}
	// demo-user's accepted friends: sarah, mike, lisa, jordan, david
	allowed := map[string]bool{
		"demo-user": true, "user-sarah": true, "user-mike": true,
		"user-lisa": true, "user-jordan": true, "user-david": true,
	}
	for _, item := range feed.Items {
		if !allowed[item.UserID] {
			t.Errorf("feed leaked check-in from %s", item.UserID)
		}
		if item.Integrity.Score <= 0 {
			t.Errorf("item from %s has no integrity score", item.UserID)
		}
	}
}

func TestLeaderboardRanksSeededUsers(t *testing.T) {
	h, _ := newTestRouter(t)

	_, env := doJSON(t, h, http.MethodGet, "/api/v1/leaderboard?user_id=demo-user", nil)
	if env.Code != 0 {
		t.Fatalf("leaderboard failed: %+v", env)
	}
	var board struct {
		Entries []struct {
			Rank     int     `json:"rank"`
			UserID   string  `json:"user_id"`
			Total    float64 `json:"total_score"`
			UserName string  `json:"user_name"`
		} `json:"entries"`
		UserRank   int `json:"user_rank"`
		TotalUsers int `json:"total_users"`
	}
	if err := json.Unmarshal(env.Data, &board); err != nil {
		t.Fatalf("decode board: %v", err)
	}
	if len(board.Entries) == 0 || board.UserRank == 0 {
		t.Fatalf("board = %+v", board)
	}
	for i := 1; i < len(board.Entries); i++ {
		if board.Entries[i].Total > board.Entries[i-1].Total {
			t.Errorf("entries out of order at %d", i)
		}
	}
	if board.Entries[0].UserName == "" {
		t.Error("entries missing display enrichment")
	}
}

func TestFriendRequestLifecycle(t *testing.T) {
	h, _ := newTestRouter(t)

	// emma already has a pending request to demo-user (seeded); accept it
	_, env := doJSON(t, h, http.MethodPost, "/api/v1/friends/f6/accept", map[string]string{"user_id": "demo-user"})
	if env.Code != 0 {
		t.Fatalf("accept failed: %+v", env)
	}
	// accepting twice conflicts
	_, env = doJSON(t, h, http.MethodPost, "/api/v1/friends/f6/accept", map[string]string{"user_id": "demo-user"})
	if env.Code != 40900 {
		t.Errorf("double accept code = %d, want 40900", env.Code)
	}
	// only the addressee may respond
	_, env = doJSON(t, h, http.MethodPost, "/api/v1/friends/f7/accept", map[string]string{"user_id": "user-noah"})
	if env.Code != 40300 {
		t.Errorf("wrong responder code = %d, want 40300", env.Code)
	}

	// duplicate request against an accepted pair conflicts
	_, env = doJSON(t, h, http.MethodPost, "/api/v1/friends/request", map[string]string{
		"user_id":  "demo-user",
		"username": "emma_l",
	})
	if env.Code != 40900 {
		t.Errorf("duplicate request code = %d, want 40900", env.Code)
	}
	// self-friending is invalid
	_, env = doJSON(t, h, http.MethodPost, "/api/v1/friends/request", map[string]string{
		"user_id":  "demo-user",
		"username": "you",
	})
	if env.Code != 40000 {
		t.Errorf("self request code = %d, want 40000", env.Code)
	}
	// unknown username is a 404
	_, env = doJSON(t, h, http.MethodPost, "/api/v1/friends/request", map[string]string{
		"user_id":  "demo-user",
		"username": "ghost",
	})
	if env.Code != 40400 {
		t.Errorf("unknown username code = %d, want 40400", env.Code)
	}
}

func TestChallengeEndpoints(t *testing.T) {
	h, _ := newTestRouter(t)

	_, env := doJSON(t, h, http.MethodPost, "/api/v1/challenges/sunrise-club/join", map[string]string{"user_id": "user-ben"})
	if env.Code != 0 {
		t.Fatalf("join failed: %+v", env)
	}
	_, env = doJSON(t, h, http.MethodPost, "/api/v1/challenges/sunrise-club/join", map[string]string{"user_id": "user-ben"})
	if env.Code != 40900 {
		t.Errorf("double join code = %d, want 40900", env.Code)
	}

	_, env = doJSON(t, h, http.MethodPost, "/api/v1/challenges/sunrise-club/checkin", map[string]string{"user_id": "user-ben"})
	if env.Code != 0 {
		t.Fatalf("challenge checkin failed: %+v", env)
	}

	_, env = doJSON(t, h, http.MethodGet, "/api/v1/challenges/sunrise-club/progress?user_id=user-ben", nil)
	if env.Code != 0 {
		t.Fatalf("progress failed: %+v", env)
	}
	var prog struct {
		Checkins int `json:"checkins"`
		Goal     int `json:"goal"`
	}
	if err := json.Unmarshal(env.Data, &prog); err != nil {
		t.Fatalf("decode progress: %v", err)
	}
	if prog.Checkins != 1 || prog.Goal != 5 {
		t.Errorf("progress = %+v, want 1/5", prog)
	}

	_, env = doJSON(t, h, http.MethodGet, "/api/v1/challenges/bogus/leaderboard", nil)
	if env.Code != 40400 {
		t.Errorf("bogus challenge code = %d, want 40400", env.Code)
	}
}

func TestAchievementStats(t *testing.T) {
	h, _ := newTestRouter(t)

	// seeded demo-user: first_checkin (10) + week_warrior (50)
	_, env := doJSON(t, h, http.MethodGet, "/api/v1/achievements/stats?user_id=demo-user", nil)
	if env.Code != 0 {
		t.Fatalf("stats failed: %+v", env)
	}
	var stats struct {
		TotalXP  int     `json:"total_xp"`
		Level    int     `json:"level"`
		XPToNext int     `json:"xp_to_next_level"`
		Progress float64 `json:"progress_percent"`
		Unlocked int     `json:"achievements_unlocked"`
		Total    int     `json:"total_achievements"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalXP != 60 || stats.Level != 2 {
		t.Errorf("stats = %+v, want 60 XP at level 2", stats)
	}
	if stats.XPToNext != 90 || stats.Progress != 10 {
		t.Errorf("progress = %d/%v, want 90/10", stats.XPToNext, stats.Progress)
	}
	if stats.Unlocked != 2 || stats.Total != 16 {
		t.Errorf("unlocked = %d/%d, want 2/16", stats.Unlocked, stats.Total)
	}
}

func TestNotificationEndpoints(t *testing.T) {
	h, _ := newTestRouter(t)

	_, env := doJSON(t, h, http.MethodGet, "/api/v1/notifications/summary?user_id=demo-user", nil)
	if env.Code != 0 {
		t.Fatalf("summary failed: %+v", env)
	}
	var summary struct {
		Total           int  `json:"total"`
		Unread          int  `json:"unread"`
		HasHighPriority bool `json:"has_high_priority"`
	}
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Total != 4 || summary.Unread != 3 || !summary.HasHighPriority {
		t.Errorf("summary = %+v, want 4 total, 3 unread, high priority", summary)
	}

	_, env = doJSON(t, h, http.MethodPost, "/api/v1/notifications/read-all", map[string]string{"user_id": "demo-user"})
	if env.Code != 0 {
		t.Fatalf("read-all failed: %+v", env)
	}
	_, env = doJSON(t, h, http.MethodGet, "/api/v1/notifications/summary?user_id=demo-user", nil)
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Unread != 0 {
		t.Errorf("unread after read-all = %d, want 0", summary.Unread)
	}
}

func TestUserSearchExcludesSelf(t *testing.T) {
	h, _ := newTestRouter(t)

	_, env := doJSON(t, h, http.MethodGet, "/api/v1/users/search?q=a&user_id=user-sarah", nil)
	if env.Code != 0 {
		t.Fatalf("search failed: %+v", env)
	}
	var res struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(res.Items) == 0 || len(res.Items) > 10 {
		t.Fatalf("search returned %d items", len(res.Items))
	}
	for _, item := range res.Items {
		if item.ID == "user-sarah" {
			t.Error("search returned the searching user")
		}
	}
}
