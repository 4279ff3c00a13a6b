package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goalsync/goalsync/models"
	"github.com/goalsync/goalsync/stores"
)

// NotificationService writes user-facing inbox entries. Unknown types are
// normalized to daily_reminder so a bad caller never drops a message.
type NotificationService struct {
	store *stores.NotificationStore
	clock Clock
}

// NewNotificationService wires the service to its store and clock.
func NewNotificationService(store *stores.NotificationStore, clock Clock) *NotificationService {
	return &NotificationService{store: store, clock: clock}
}

// Create stores a notification and returns it.
func (s *NotificationService) Create(userID, typ, title, message, actionURL string) models.Notification {
	typ, _ = models.NotificationTypeFor(typ)
	n := models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		ActionURL: actionURL,
		CreatedAt: s.clock.Now(),
	}
	s.store.Add(n)
	return n
}

// StreakRisk warns a user that today's check-in is still missing.
func (s *NotificationService) StreakRisk(userID, goalTitle string, currentStreak int) {
	s.Create(userID, "streak_risk",
		"Streak at Risk! 🔥",
		fmt.Sprintf("Don't forget to check in for '%s' today. Your %d-day streak is on the line!", goalTitle, currentStreak),
		"/home")
}

// AchievementUnlocked announces a fresh unlock.
func (s *NotificationService) AchievementUnlocked(userID string, def models.AchievementDef) {
	s.Create(userID, "achievement_unlocked",
		fmt.Sprintf("Achievement Unlocked! %s", def.Emoji),
		fmt.Sprintf("You earned '%s'!", def.Name),
		"/achievements")
}

// LevelUp announces a new level tier.
func (s *NotificationService) LevelUp(userID string, level models.LevelDef) {
	s.Create(userID, "level_up",
		fmt.Sprintf("Level Up! %s", level.Emoji),
		fmt.Sprintf("You've reached Level %d: %s!", level.Level, level.Name),
		"/settings")
}

// ChallengeJoined confirms a join.
func (s *NotificationService) ChallengeJoined(userID string, def models.ChallengeDef) {
	s.Create(userID, "challenge_joined",
		fmt.Sprintf("Challenge Joined! %s", def.Emoji),
		fmt.Sprintf("You joined %s! %d check-ins in %d days to win.", def.Name, def.GoalCheckins, def.DurationDays),
		"/challenges")
}

// ChallengeCompleted celebrates crossing the goal threshold.
func (s *NotificationService) ChallengeCompleted(userID string, def models.ChallengeDef) {
	s.Create(userID, "challenge_completed",
		"Challenge Completed! 🎉",
		fmt.Sprintf("You finished %s and earned the %s %s!", def.Name, def.PrizeName, def.PrizeEmoji),
		"/challenges")
}

// FriendRequest tells the addressee someone wants to connect.
func (s *NotificationService) FriendRequest(userID, requesterName string) {
	s.Create(userID, "friend_request",
		"New Friend Request 👤",
		fmt.Sprintf("%s wants to be your friend", requesterName),
		"/friends")
}
