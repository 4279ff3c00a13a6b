package models

import "fmt"

// AchievementDef is a static catalogue entry. The catalogue is defined once
// below and validated at boot; it never changes at runtime.
type AchievementDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Points      int    `json:"points"`
	Category    string `json:"category"`
}

// LevelDef is one tier of the XP ladder. Levels must be ordered by strictly
// increasing MinXP with the first entry at 0.
type LevelDef struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	MinXP int    `json:"min_xp"`
}

// ChallengeDef is a static time-bound competition. BaseParticipants is the
// advertised headcount before live joins are added.
type ChallengeDef struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Emoji            string `json:"emoji"`
	Category         string `json:"category"`
	DurationDays     int    `json:"duration_days"`
	GoalCheckins     int    `json:"goal_checkins"`
	PrizeEmoji       string `json:"prize_emoji"`
	PrizeName        string `json:"prize_name"`
	XPReward         int    `json:"xp_reward"`
	BaseParticipants int    `json:"-"`
}

// Achievements is the full catalogue, milestone/streak entries first. Order
// here is the catalogue's presentation order.
var Achievements = []AchievementDef{
	{ID: "first_checkin", Name: "First Step", Description: "Complete your first check-in", Emoji: "👟", Points: 10, Category: "milestone"},
	{ID: "week_warrior", Name: "Week Warrior", Description: "Maintain a 7-day streak", Emoji: "🔥", Points: 50, Category: "streak"},
	{ID: "habit_former", Name: "Habit Former", Description: "Reach a 21-day streak", Emoji: "💎", Points: 150, Category: "streak"},
	{ID: "monthly_master", Name: "Monthly Master", Description: "Achieve a 30-day streak", Emoji: "👑", Points: 200, Category: "streak"},
	{ID: "century_club", Name: "Century Club", Description: "100 days of consistency", Emoji: "💯", Points: 500, Category: "streak"},
	{ID: "early_bird", Name: "Early Bird", Description: "Check in before 7 AM", Emoji: "🌅", Points: 25, Category: "time"},
	{ID: "night_owl", Name: "Night Owl", Description: "Check in after 10 PM", Emoji: "🦉", Points: 25, Category: "time"},
	{ID: "weekend_warrior", Name: "Weekend Warrior", Description: "Complete 5 weekend check-ins", Emoji: "🏆", Points: 40, Category: "time"},
	{ID: "social_butterfly", Name: "Social Butterfly", Description: "Add 5 friends", Emoji: "🦋", Points: 30, Category: "social"},
	{ID: "cheerleader", Name: "Cheerleader", Description: "Like 10 friend check-ins", Emoji: "📣", Points: 20, Category: "social"},
	{ID: "community_star", Name: "Community Star", Description: "Receive 50 likes on your check-ins", Emoji: "⭐", Points: 100, Category: "social"},
	{ID: "multi_tasker", Name: "Multi-Tasker", Description: "Have 3 active goals", Emoji: "🎯", Points: 35, Category: "goals"},
	{ID: "goal_crusher", Name: "Goal Crusher", Description: "Complete 50 total check-ins", Emoji: "💪", Points: 75, Category: "goals"},
	{ID: "perfectionist", Name: "Perfectionist", Description: "100% consistency for a month", Emoji: "🥇", Points: 250, Category: "goals"},
	{ID: "challenger", Name: "Challenger", Description: "Join your first challenge", Emoji: "🏁", Points: 20, Category: "challenges"},
	{ID: "challenge_champion", Name: "Challenge Champion", Description: "Win a challenge", Emoji: "🏅", Points: 150, Category: "challenges"},
}

// Levels is the XP ladder, ascending by MinXP.
var Levels = []LevelDef{
	{Level: 1, Name: "Beginner", MinXP: 0, Emoji: "🌱"},
	{Level: 2, Name: "Explorer", MinXP: 50, Emoji: "🌿"},
	{Level: 3, Name: "Achiever", MinXP: 150, Emoji: "🌳"},
	{Level: 4, Name: "Dedicated", MinXP: 300, Emoji: "🔥"},
	{Level: 5, Name: "Champion", MinXP: 500, Emoji: "⭐"},
	{Level: 6, Name: "Master", MinXP: 800, Emoji: "💎"},
	{Level: 7, Name: "Legend", MinXP: 1200, Emoji: "👑"},
	{Level: 8, Name: "Immortal", MinXP: 2000, Emoji: "🏆"},
}

// Challenges is the active challenge catalogue.
var Challenges = []ChallengeDef{
	{ID: "7day-fitness", Name: "7-Day Fitness Blitz", Description: "Complete 7 days of fitness activities", Emoji: "💪", Category: "fitness", DurationDays: 7, GoalCheckins: 7, PrizeEmoji: "🏆", PrizeName: "Fitness Champion Badge", XPReward: 100, BaseParticipants: 847},
	{ID: "21day-reading", Name: "21-Day Reading Sprint", Description: "Read every day for 21 days", Emoji: "📚", Category: "learning", DurationDays: 21, GoalCheckins: 21, PrizeEmoji: "📖", PrizeName: "Bookworm Elite", XPReward: 200, BaseParticipants: 523},
	{ID: "30day-mindfulness", Name: "30-Day Mindfulness Journey", Description: "Meditate or journal for 30 days straight", Emoji: "🧘", Category: "wellness", DurationDays: 30, GoalCheckins: 30, PrizeEmoji: "🕊️", PrizeName: "Zen Master", XPReward: 300, BaseParticipants: 412},
	{ID: "weekly-warrior", Name: "Weekly Warrior", Description: "Complete all your goals every day this week", Emoji: "⚔️", Category: "productivity", DurationDays: 7, GoalCheckins: 7, PrizeEmoji: "🔥", PrizeName: "Warrior Badge", XPReward: 75, BaseParticipants: 1234},
	{ID: "sunrise-club", Name: "Sunrise Club", Description: "Check in before 7 AM for 5 days", Emoji: "🌅", Category: "lifestyle", DurationDays: 7, GoalCheckins: 5, PrizeEmoji: "☀️", PrizeName: "Early Riser", XPReward: 60, BaseParticipants: 678},
}

var (
	achievementIndex = map[string]AchievementDef{}
	challengeIndex   = map[string]ChallengeDef{}
)

func init() {
	for _, a := range Achievements {
		achievementIndex[a.ID] = a
	}
	for _, c := range Challenges {
		challengeIndex[c.ID] = c
	}
}

// AchievementByID looks up a catalogue entry.
func AchievementByID(id string) (AchievementDef, bool) {
	a, ok := achievementIndex[id]
	return a, ok
}

// ChallengeByID looks up a challenge definition.
func ChallengeByID(id string) (ChallengeDef, bool) {
	c, ok := challengeIndex[id]
	return c, ok
}

// ValidateCatalogs checks the static tables once at boot. The process must
// refuse to start on a broken catalogue rather than misbehave later.
func ValidateCatalogs() error {
	seen := map[string]bool{}
	for _, a := range Achievements {
		if a.ID == "" || a.Name == "" {
			return fmt.Errorf("achievement with empty id or name")
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		if a.Points <= 0 {
			return fmt.Errorf("achievement %q has non-positive points", a.ID)
		}
		seen[a.ID] = true
	}

	if len(Levels) == 0 {
		return fmt.Errorf("level table is empty")
	}
	if Levels[0].MinXP != 0 {
		return fmt.Errorf("first level must start at 0 xp, got %d", Levels[0].MinXP)
	}
	for i := 1; i < len(Levels); i++ {
		if Levels[i].MinXP <= Levels[i-1].MinXP {
			return fmt.Errorf("level %d min_xp %d not above previous %d", Levels[i].Level, Levels[i].MinXP, Levels[i-1].MinXP)
		}
	}

	seen = map[string]bool{}
	for _, c := range Challenges {
		if c.ID == "" || c.Name == "" {
			return fmt.Errorf("challenge with empty id or name")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate challenge id %q", c.ID)
		}
		if c.GoalCheckins <= 0 {
			return fmt.Errorf("challenge %q has non-positive goal_checkins", c.ID)
		}
		if c.DurationDays <= 0 {
			return fmt.Errorf("challenge %q has non-positive duration_days", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}
