package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goalsync/goalsync/config"
	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
	"github.com/goalsync/goalsync/utils"
)

// LeaderboardController serves the global integrity-score ranking.
type LeaderboardController struct {
	checkins *stores.CheckInStore
	users    *stores.UserStore
	clock    services.Clock
}

// NewLeaderboardController creates a new LeaderboardController instance.
func NewLeaderboardController(checkins *stores.CheckInStore, users *stores.UserStore, clock services.Clock) *LeaderboardController {
	return &LeaderboardController{checkins: checkins, users: users, clock: clock}
}

type leaderboardRow struct {
	services.LeaderboardEntry
	UserName      string `json:"user_name"`
	Avatar        string `json:"avatar"`
	IsCurrentUser bool   `json:"is_current_user"`
}

// Get aggregates every check-in into a ranked leaderboard. Briefly cached in
// redis; the recency component makes longer TTLs visibly stale.
func (l *LeaderboardController) Get(ctx *gin.Context) {
	cfg := config.Get()
	userID := actingUser(ctx)
	limit := parseLimit(ctx.Query("limit"), cfg.LeaderboardLimit, 100)

	cacheKey := fmt.Sprintf("cache:leaderboard:user=%s:limit=%d", userID, limit)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(200, "application/json", b)
		return
	}

	board := services.BuildLeaderboard(l.checkins.All(), userID, limit, l.clock.Now())

	rows := make([]leaderboardRow, 0, len(board.Entries))
	for _, e := range board.Entries {
		row := leaderboardRow{LeaderboardEntry: e, UserName: "Unknown", Avatar: "👤", IsCurrentUser: e.UserID == userID}
		if u, ok := l.users.Get(e.UserID); ok {
			row.UserName = u.DisplayName
			row.Avatar = u.Avatar
		}
		rows = append(rows, row)
	}

	payload := gin.H{
		"entries":     rows,
		"user_rank":   board.UserRank,
		"total_users": board.TotalUsers,
	}
	wrapper := utils.JSONResponse{Code: utils.CodeOK, Message: "success", Data: payload}
	utils.CacheSetJSON(cacheKey, wrapper, time.Duration(cfg.LeaderboardCacheTTLSec)*time.Second)
	utils.Success(ctx, payload)
}
