package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/goalsync/goalsync/config"
	"github.com/goalsync/goalsync/controllers"
	"github.com/goalsync/goalsync/middleware"
	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
	"github.com/goalsync/goalsync/utils"
)

// Deps carries the stores and services the controllers are wired with.
type Deps struct {
	Users          *stores.UserStore
	Goals          *stores.GoalStore
	Checkins       *stores.CheckInStore
	Friends        *stores.FriendshipStore
	Participations *stores.ParticipationStore
	Notifications  *stores.NotificationStore

	Achievements *services.AchievementService
	Challenges   *services.ChallengeService
	Notify       *services.NotificationService
	Clock        services.Clock
}

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(d Deps) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Count requests per day for /stats
	r.Use(middleware.RequestCounter())

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	goalController := controllers.NewGoalController(d.Goals, d.Clock)
	checkinController := controllers.NewCheckinController(d.Goals, d.Checkins, d.Users, d.Friends, d.Achievements, d.Clock)
	leaderboardController := controllers.NewLeaderboardController(d.Checkins, d.Users, d.Clock)
	achievementController := controllers.NewAchievementController(d.Achievements)
	challengeController := controllers.NewChallengeController(d.Challenges, d.Users, d.Clock)
	friendController := controllers.NewFriendController(d.Friends, d.Users, d.Achievements, d.Notify, d.Clock)
	notificationController := controllers.NewNotificationController(d.Notifications, d.Clock)
	userController := controllers.NewUserController(d.Users, d.Goals, d.Checkins, d.Friends, d.Achievements)
	statsController := controllers.NewStatsController(d.Users, d.Goals, d.Checkins, d.Participations, d.Notifications, d.Clock)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit())

	goalsGroup := api.Group("/goals")
	goalsGroup.POST("", goalController.Create)
	goalsGroup.GET("", goalController.List)
	goalsGroup.GET("/:id", goalController.Get)
	goalsGroup.PUT("/:id", goalController.Update)
	goalsGroup.DELETE("/:id", goalController.Delete)

	checkinsGroup := api.Group("/checkins")
	checkinsGroup.POST("", checkinController.Create)
	checkinsGroup.GET("/feed", checkinController.Feed)
	checkinsGroup.GET("/user/:id", checkinController.ListUserCheckins)

	api.GET("/leaderboard", leaderboardController.Get)

	achievementsGroup := api.Group("/achievements")
	achievementsGroup.GET("", achievementController.List)
	achievementsGroup.POST("/unlock", achievementController.Unlock)
	achievementsGroup.GET("/stats", achievementController.Stats)
	achievementsGroup.GET("/milestones", achievementController.Milestones)

	challengesGroup := api.Group("/challenges")
	challengesGroup.GET("", challengeController.Active)
	challengesGroup.GET("/active", challengeController.Active)
	challengesGroup.POST("/:id/join", challengeController.Join)
	challengesGroup.POST("/:id/leave", challengeController.Leave)
	challengesGroup.POST("/:id/checkin", challengeController.Checkin)
	challengesGroup.GET("/:id/progress", challengeController.Progress)
	challengesGroup.GET("/:id/leaderboard", challengeController.Leaderboard)

	friendsGroup := api.Group("/friends")
	friendsGroup.POST("/request", friendController.Request)
	friendsGroup.POST("/:id/accept", friendController.Accept)
	friendsGroup.POST("/:id/reject", friendController.Reject)
	friendsGroup.GET("", friendController.List)
	friendsGroup.GET("/requests", friendController.Requests)

	notificationsGroup := api.Group("/notifications")
	notificationsGroup.GET("", notificationController.List)
	notificationsGroup.GET("/summary", notificationController.Summary)
	notificationsGroup.POST("/:id/read", notificationController.MarkRead)
	notificationsGroup.POST("/read-all", notificationController.MarkAllRead)

	usersGroup := api.Group("/users")
	usersGroup.GET("/search", userController.Search)
	usersGroup.GET("/:id", userController.Get)

	api.GET("/stats", statsController.Get)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
