package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goalsync/goalsync/config"
	"github.com/goalsync/goalsync/models"
	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
	"github.com/goalsync/goalsync/utils"
)

// CheckinController handles check-in creation and the social feed.
type CheckinController struct {
	goals        *stores.GoalStore
	checkins     *stores.CheckInStore
	users        *stores.UserStore
	friends      *stores.FriendshipStore
	achievements *services.AchievementService
	clock        services.Clock
}

// NewCheckinController creates a new CheckinController instance.
func NewCheckinController(goals *stores.GoalStore, checkins *stores.CheckInStore, users *stores.UserStore, friends *stores.FriendshipStore, achievements *services.AchievementService, clock services.Clock) *CheckinController {
	return &CheckinController{goals: goals, checkins: checkins, users: users, friends: friends, achievements: achievements, clock: clock}
}

// feedEntry is a check-in enriched for display.
type feedEntry struct {
	models.CheckIn
	UserName  string                  `json:"user_name"`
	Avatar    string                  `json:"avatar"`
	Integrity services.IntegrityScore `json:"integrity"`
	TimeAgo   string                  `json:"time_ago"`
}

// Create records a check-in against one of the caller's goals, maintains the
// goal's streak counters, and sweeps streak achievement thresholds.
func (c *CheckinController) Create(ctx *gin.Context) {
	var req struct {
		UserID   string `json:"user_id" binding:"required"`
		GoalID   string `json:"goal_id" binding:"required"`
		Caption  string `json:"caption"`
		MediaURL string `json:"media_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "invalid request payload")
		return
	}

	goal, ok := c.goals.Get(req.GoalID)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "goal not found")
		return
	}
	if goal.UserID != req.UserID {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "goal does not belong to user")
		return
	}

	now := c.clock.Now()
	isLate := false
	goal, _ = c.goals.Update(req.GoalID, func(g *models.Goal) {
		switch {
		case g.LastCheckinAt == nil:
			g.CurrentStreak = 1
		case isSameDay(*g.LastCheckinAt, now):
			// second check-in today, streak unchanged
		case isYesterday(*g.LastCheckinAt, now):
			g.CurrentStreak++
		default:
			isLate = true
			g.CurrentStreak = 1
		}
		if g.CurrentStreak > g.LongestStreak {
			g.LongestStreak = g.CurrentStreak
		}
		t := now
		g.LastCheckinAt = &t
	})

	totalDays := int(now.Sub(goal.CreatedAt).Hours()/24) + 1
	checkin := models.CheckIn{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		GoalID:    goal.ID,
		Category:  goal.Category,
		Caption:   utils.SanitizeTrim(req.Caption),
		MediaURL:  req.MediaURL,
		Streak:    goal.CurrentStreak,
		TotalDays: totalDays,
		IsLate:    isLate,
		CreatedAt: now,
	}
	c.checkins.Add(checkin)

	newUnlocks, err := c.achievements.CheckStreakThresholds(req.UserID, goal.CurrentStreak)
	if err != nil {
		fail(ctx, err)
		return
	}

	// ranked reads are stale now
	utils.InvalidateByPrefix("cache:leaderboard:")

	utils.Success(ctx, gin.H{
		"checkin":          checkin,
		"integrity":        services.ComputeIntegrity(checkin.Streak, checkin.TotalDays, 0),
		"new_achievements": newUnlocks,
	})
}

// Feed returns recent check-ins from the user and their accepted friends,
// newest first, each enriched with its integrity score.
func (c *CheckinController) Feed(ctx *gin.Context) {
	userID := actingUser(ctx)
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing user_id")
		return
	}
	limit := parseLimit(ctx.Query("limit"), config.Get().FeedLimit, 100)

	visible := utils.UniqueStrings(append([]string{userID}, c.friends.AcceptedFriendIDs(userID)...))
	records := c.checkins.ByUsers(visible)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > limit {
		records = records[:limit]
	}

	utils.Success(ctx, gin.H{
		"items": c.enrich(records),
		"total": len(records),
	})
}

// ListUserCheckins returns one user's check-ins, newest first.
func (c *CheckinController) ListUserCheckins(ctx *gin.Context) {
	userID := ctx.Param("id")
	if _, ok := c.users.Get(userID); !ok {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "user not found")
		return
	}
	records := c.checkins.ByUser(userID)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	utils.Success(ctx, gin.H{
		"items": c.enrich(records),
		"total": len(records),
	})
}

func (c *CheckinController) enrich(records []models.CheckIn) []feedEntry {
	now := c.clock.Now()
	entries := make([]feedEntry, 0, len(records))
	for _, r := range records {
		e := feedEntry{
			CheckIn:   r,
			UserName:  "Unknown",
			Avatar:    "👤",
			Integrity: services.ComputeIntegrity(r.Streak, r.TotalDays, now.Sub(r.CreatedAt).Hours()),
			TimeAgo:   utils.TimeAgo(r.CreatedAt, now),
		}
		if u, ok := c.users.Get(r.UserID); ok {
			e.UserName = u.DisplayName
			e.Avatar = u.Avatar
		}
		entries = append(entries, e)
	}
	return entries
}

func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func isYesterday(last, now time.Time) bool {
	yesterday := now.Add(-24 * time.Hour)
	return last.Year() == yesterday.Year() && last.YearDay() == yesterday.YearDay()
}
