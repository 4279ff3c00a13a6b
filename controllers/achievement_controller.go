package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goalsync/goalsync/models"
	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/utils"
)

// streakMilestones is the display table behind /achievements/milestones.
var streakMilestones = []struct {
	Streak        int    `json:"streak"`
	Name          string `json:"name"`
	Emoji         string `json:"emoji"`
	AchievementID string `json:"achievement_id"`
}{
	{7, "Week Warrior", "🔥", "week_warrior"},
	{21, "Habit Former", "💎", "habit_former"},
	{30, "Monthly Master", "👑", "monthly_master"},
	{100, "Century Club", "💯", "century_club"},
}

// AchievementController exposes the catalogue, unlock operation, and XP
// stats.
type AchievementController struct {
	achievements *services.AchievementService
}

// NewAchievementController creates a new AchievementController instance.
func NewAchievementController(achievements *services.AchievementService) *AchievementController {
	return &AchievementController{achievements: achievements}
}

// List returns the full catalogue with the user's unlock status, unlocked
// entries first.
func (a *AchievementController) List(ctx *gin.Context) {
	userID := actingUser(ctx)
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing user_id")
		return
	}
	list := a.achievements.ListFor(userID)
	unlocked := 0
	for _, s := range list {
		if s.Unlocked {
			unlocked++
		}
	}
	utils.Success(ctx, gin.H{
		"items":          list,
		"total":          len(list),
		"unlocked_count": unlocked,
	})
}

// Unlock grants an achievement. Repeats are harmless and report is_new=false.
func (a *AchievementController) Unlock(ctx *gin.Context) {
	var req struct {
		UserID        string `json:"user_id" binding:"required"`
		AchievementID string `json:"achievement_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "invalid request payload")
		return
	}
	res, err := a.achievements.Unlock(req.UserID, req.AchievementID)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, res)
}

// Stats returns the user's XP, level, and progress toward the next tier.
func (a *AchievementController) Stats(ctx *gin.Context) {
	userID := actingUser(ctx)
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing user_id")
		return
	}
	st := a.achievements.StateFor(userID)
	info := services.LevelFor(st.TotalXP)
	xpToNext, progress := services.LevelProgress(st.TotalXP)

	utils.Success(ctx, gin.H{
		"total_xp":              st.TotalXP,
		"level":                 info.Current.Level,
		"level_name":            info.Current.Name,
		"level_emoji":           info.Current.Emoji,
		"xp_to_next_level":      xpToNext,
		"progress_percent":      round1(progress),
		"achievements_unlocked": len(st.UnlockedIDs),
		"total_achievements":    len(models.Achievements),
	})
}

// Milestones returns the streak milestone ladder with progress toward the
// next rung.
func (a *AchievementController) Milestones(ctx *gin.Context) {
	currentStreak := 0
	if v, err := strconv.Atoi(ctx.Query("current_streak")); err == nil && v > 0 {
		currentStreak = v
	}

	var next *struct {
		Streak        int    `json:"streak"`
		Name          string `json:"name"`
		Emoji         string `json:"emoji"`
		AchievementID string `json:"achievement_id"`
	}
	for i := range streakMilestones {
		if currentStreak < streakMilestones[i].Streak {
			next = &streakMilestones[i]
			break
		}
	}

	daysToNext := 0
	progress := 100.0
	if next != nil {
		daysToNext = next.Streak - currentStreak
		progress = round1(float64(currentStreak) / float64(next.Streak) * 100)
	}

	utils.Success(ctx, gin.H{
		"current_streak":   currentStreak,
		"milestones":       streakMilestones,
		"next_milestone":   next,
		"days_to_next":     daysToNext,
		"progress_percent": progress,
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
