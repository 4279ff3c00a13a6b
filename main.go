package main

import (
	"github.com/goalsync/goalsync/config"
	"github.com/goalsync/goalsync/models"
	"github.com/goalsync/goalsync/routes"
	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
	"github.com/goalsync/goalsync/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	if err := models.ValidateCatalogs(); err != nil {
		utils.Sugar.Fatalf("catalog validation failed: %v", err)
	}

	clock := services.SystemClock{}

	users := stores.NewUserStore()
	goals := stores.NewGoalStore()
	checkins := stores.NewCheckInStore()
	friends := stores.NewFriendshipStore()
	states := stores.NewGameStateStore()
	participations := stores.NewParticipationStore()
	notifications := stores.NewNotificationStore()

	if cfg.DemoSeed {
		stores.SeedDemo(users, goals, checkins, friends, states, participations, notifications, clock.Now())
		utils.Sugar.Infof("demo dataset seeded: %d users, %d checkins", users.Count(), checkins.Count())
	}

	notify := services.NewNotificationService(notifications, clock)
	achievements := services.NewAchievementService(states, clock, notify)
	challenges := services.NewChallengeService(participations, clock, achievements, notify)

	r := routes.SetupRouter(routes.Deps{
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
	})

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
