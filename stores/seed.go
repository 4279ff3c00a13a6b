package stores

import (
	"fmt"
	"time"

	"github.com/goalsync/goalsync/models"
)

// SeedDemo loads the demo dataset: a roster of users around "demo-user", their
// goals, a few days of check-ins, the demo friendship graph, starter unlocks,
// and some challenge activity. Intended for local runs; gated by config.
func SeedDemo(users *UserStore, goals *GoalStore, checkins *CheckInStore, friends *FriendshipStore, states *GameStateStore, parts *ParticipationStore, notifications *NotificationStore, now time.Time) {
	seedUsers(users)
	seedFriendships(friends, now)
	seedGoalsAndCheckins(goals, checkins, now)
	seedGameState(states, now)
	seedChallenges(parts, now)
	seedNotifications(notifications, now)
}

func seedUsers(users *UserStore) {
	roster := []models.User{
		{ID: "demo-user", Username: "you", DisplayName: "You", Avatar: "😊"},
		{ID: "user-sarah", Username: "sarah_k", DisplayName: "Sarah K.", Avatar: "👩‍🦰"},
		{ID: "user-mike", Username: "mike_r", DisplayName: "Mike R.", Avatar: "👨‍🦱"},
		{ID: "user-emma", Username: "emma_l", DisplayName: "Emma L.", Avatar: "👩"},
		{ID: "user-alex", Username: "alex_t", DisplayName: "Alex T.", Avatar: "🧑"},
		{ID: "user-jordan", Username: "jordan_p", DisplayName: "Jordan P.", Avatar: "🧔"},
		{ID: "user-lisa", Username: "lisa_m", DisplayName: "Lisa M.", Avatar: "👩‍🦳"},
		{ID: "user-david", Username: "david_c", DisplayName: "David C.", Avatar: "👨"},
		{ID: "user-olivia", Username: "olivia_w", DisplayName: "Olivia W.", Avatar: "👧"},
		{ID: "user-noah", Username: "noah_b", DisplayName: "Noah B.", Avatar: "👦"},
		{ID: "user-ava", Username: "ava_h", DisplayName: "Ava H.", Avatar: "👩‍🎨"},
		{ID: "user-liam", Username: "liam_s", DisplayName: "Liam S.", Avatar: "🧑‍💼"},
		{ID: "user-sophia", Username: "sophia_r", DisplayName: "Sophia R.", Avatar: "👩‍🎤"},
		{ID: "user-mason", Username: "mason_j", DisplayName: "Mason J.", Avatar: "💪"},
		{ID: "user-isabella", Username: "isabella_g", DisplayName: "Isabella G.", Avatar: "💃"},
		{ID: "user-ethan", Username: "ethan_k", DisplayName: "Ethan K.", Avatar: "👨‍💻"},
		{ID: "user-mia", Username: "mia_t", DisplayName: "Mia T.", Avatar: "🧘‍♀️"},
		{ID: "user-james", Username: "james_w", DisplayName: "James W.", Avatar: "🏃"},
		{ID: "user-charlotte", Username: "charlotte_d", DisplayName: "Charlotte D.", Avatar: "✍️"},
		{ID: "user-ben", Username: "ben_f", DisplayName: "Ben F.", Avatar: "🧘"},
		{ID: "user-amelia", Username: "amelia_p", DisplayName: "Amelia P.", Avatar: "🚶‍♀️"},
	}
	for _, u := range roster {
		u.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		users.Put(u)
	}
}

// seedFriendships gives demo-user five accepted friends plus three pending
// incoming requests.
func seedFriendships(friends *FriendshipStore, now time.Time) {
	rows := []struct {
		id, requester, addressee, status string
	}{
		{"f1", "user-sarah", "demo-user", models.FriendshipAccepted},
		{"f2", "user-mike", "demo-user", models.FriendshipAccepted},
		{"f3", "demo-user", "user-lisa", models.FriendshipAccepted},
		{"f4", "demo-user", "user-jordan", models.FriendshipAccepted},
		{"f5", "user-david", "demo-user", models.FriendshipAccepted},
		{"f6", "user-emma", "demo-user", models.FriendshipPending},
		{"f7", "user-olivia", "demo-user", models.FriendshipPending},
		{"f8", "user-liam", "demo-user", models.FriendshipPending},
	}
	for _, r := range rows {
		friends.Put(models.Friendship{
			ID:          r.id,
			RequesterID: r.requester,
			AddresseeID: r.addressee,
			Status:      r.status,
			CreatedAt:   now.Add(-72 * time.Hour),
		})
	}
}

func seedGoalsAndCheckins(goals *GoalStore, checkins *CheckInStore, now time.Time) {
	rows := []struct {
		goalID, userID, title, category string
		streak, totalDays               int
		lastCheckinHoursAgo             float64
		caption                         string
	}{
		{"goal-demo-run", "demo-user", "Morning Run", "fitness", 8, 10, 20, "5k before work 🏃"},
		{"goal-demo-read", "demo-user", "Read 20 Pages", "learning", 3, 12, 26, "Finished another chapter"},
		{"goal-sarah-yoga", "user-sarah", "Daily Yoga", "wellness", 21, 23, 3, "Day 21! Feeling great 🧘"},
		{"goal-mike-gym", "user-mike", "Gym Session", "fitness", 5, 9, 7, "Leg day done 💪"},
		{"goal-lisa-journal", "user-lisa", "Evening Journal", "wellness", 45, 48, 1, "Reflecting on a good day"},
		{"goal-jordan-code", "user-jordan", "Code Practice", "learning", 2, 30, 30, "Two days back on track"},
		{"goal-david-walk", "user-david", "10k Steps", "fitness", 12, 14, 5, "Evening walk by the river"},
	}
	for _, r := range rows {
		last := now.Add(-time.Duration(r.lastCheckinHoursAgo * float64(time.Hour)))
		created := now.Add(-time.Duration(r.totalDays) * 24 * time.Hour)
		goals.Put(models.Goal{
			ID:            r.goalID,
			UserID:        r.userID,
			Title:         r.title,
			Category:      r.category,
			Frequency:     "daily",
			CurrentStreak: r.streak,
			LongestStreak: r.streak,
			LastCheckinAt: &last,
			CreatedAt:     created,
		})

		// a short history per goal so feeds and leaderboards have depth
		for i := 0; i < 3; i++ {
			streak := r.streak - i
			if streak < 1 {
				break
			}
			checkins.Add(models.CheckIn{
				ID:        fmt.Sprintf("checkin-%s-%d", r.goalID, i),
				UserID:    r.userID,
				GoalID:    r.goalID,
				Category:  r.category,
				Caption:   r.caption,
				Streak:    streak,
				TotalDays: r.totalDays - i,
				CreatedAt: last.Add(-time.Duration(i) * 24 * time.Hour),
			})
		}
	}
}

// seedGameState gives demo-user their starter unlocks and a few friends
// plausible XP totals.
func seedGameState(states *GameStateStore, now time.Time) {
	unlock := func(userID string, at time.Time, ids ...string) {
		states.Update(userID, func(st *models.UserGameState) {
			for _, id := range ids {
				def, ok := models.AchievementByID(id)
				if !ok {
					continue
				}
				if _, done := st.UnlockedAt[id]; done {
					continue
				}
				st.UnlockedIDs = append(st.UnlockedIDs, id)
				st.UnlockedAt[id] = at
				st.TotalXP += def.Points
			}
		})
	}

	unlock("demo-user", now.Add(-9*24*time.Hour), "first_checkin", "week_warrior")
	unlock("user-sarah", now.Add(-20*24*time.Hour), "first_checkin", "week_warrior", "habit_former")
	unlock("user-lisa", now.Add(-40*24*time.Hour), "first_checkin", "week_warrior", "habit_former", "monthly_master")
	unlock("user-mike", now.Add(-8*24*time.Hour), "first_checkin")
}

func seedChallenges(parts *ParticipationStore, now time.Time) {
	parts.Join("7day-fitness", "demo-user", now.Add(-3*24*time.Hour))
	parts.Update("7day-fitness", "demo-user", func(p *models.ChallengeParticipation) {
		p.Checkins = 3
	})
	parts.Join("7day-fitness", "user-mike", now.Add(-5*24*time.Hour))
	parts.Update("7day-fitness", "user-mike", func(p *models.ChallengeParticipation) {
		p.Checkins = 5
	})
	parts.Join("21day-reading", "user-sarah", now.Add(-21*24*time.Hour))
	parts.Update("21day-reading", "user-sarah", func(p *models.ChallengeParticipation) {
		p.Checkins = 21
		p.Completed = true
	})
}

func seedNotifications(notifications *NotificationStore, now time.Time) {
	rows := []struct {
		id, typ, title, message, actionURL string
		hoursAgo                           float64
		read                               bool
	}{
		{"n1", "friend_request", "New Friend Request 👤", "Emma L. wants to be your friend", "/friends", 2, false},
		{"n2", "achievement_unlocked", "Achievement Unlocked! 🔥", "You earned 'Week Warrior'!", "/achievements", 26, false},
		{"n3", "challenge_joined", "Challenge Joined! 💪", "You joined 7-Day Fitness Blitz! 7 check-ins in 7 days to win.", "/challenges", 72, true},
		{"n4", "streak_risk", "Streak at Risk! 🔥", "Don't forget to check in for 'Read 20 Pages' today. Your 3-day streak is on the line!", "/home", 1, false},
	}
	for _, r := range rows {
		notifications.Add(models.Notification{
			ID:        r.id,
			UserID:    "demo-user",
			Type:      r.typ,
			Title:     r.title,
			Message:   r.message,
			ActionURL: r.actionURL,
			Read:      r.read,
			CreatedAt: now.Add(-time.Duration(r.hoursAgo * float64(time.Hour))),
		})
	}
}
