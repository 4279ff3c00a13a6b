package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
	"github.com/goalsync/goalsync/utils"
)

// UserController serves user profiles and search.
type UserController struct {
	users        *stores.UserStore
	goals        *stores.GoalStore
	checkins     *stores.CheckInStore
	friends      *stores.FriendshipStore
	achievements *services.AchievementService
}

// NewUserController creates a new UserController instance.
func NewUserController(users *stores.UserStore, goals *stores.GoalStore, checkins *stores.CheckInStore, friends *stores.FriendshipStore, achievements *services.AchievementService) *UserController {
	return &UserController{users: users, goals: goals, checkins: checkins, friends: friends, achievements: achievements}
}

// Get returns a user profile with goal, check-in, friend, and XP summaries.
func (u *UserController) Get(ctx *gin.Context) {
	user, ok := u.users.Get(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "user not found")
		return
	}

	st := u.achievements.StateFor(user.ID)
	info := services.LevelFor(st.TotalXP)

	utils.Success(ctx, gin.H{
		"user":          user,
		"goal_count":    len(u.goals.ByUser(user.ID)),
		"checkin_count": u.checkins.CountByUser(user.ID),
		"friend_count":  u.friends.CountAcceptedFor(user.ID),
		"total_xp":      st.TotalXP,
		"level":         info.Current.Level,
		"level_name":    info.Current.Name,
		"level_emoji":   info.Current.Emoji,
	})
}

// Search matches users by username or display name, capped at 10.
func (u *UserController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing query")
		return
	}
	limit := parseLimit(ctx.Query("limit"), 10, 10)
	results := u.users.Search(query, actingUser(ctx), limit)
	utils.Success(ctx, gin.H{"items": results, "total": len(results)})
}
