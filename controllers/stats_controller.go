package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
	"github.com/goalsync/goalsync/utils"
)

// StatsController reports instance-wide counters.
type StatsController struct {
	users          *stores.UserStore
	goals          *stores.GoalStore
	checkins       *stores.CheckInStore
	participations *stores.ParticipationStore
	notifications  *stores.NotificationStore
	clock          services.Clock
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(users *stores.UserStore, goals *stores.GoalStore, checkins *stores.CheckInStore, participations *stores.ParticipationStore, notifications *stores.NotificationStore, clock services.Clock) *StatsController {
	return &StatsController{users: users, goals: goals, checkins: checkins, participations: participations, notifications: notifications, clock: clock}
}

// Get returns entity counts plus today's request total from redis.
func (s *StatsController) Get(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"users":          s.users.Count(),
		"goals":          s.goals.Count(),
		"checkins":       s.checkins.Count(),
		"participations": s.participations.Count(),
		"notifications":  s.notifications.Count(),
		"requests_today": utils.GetDailyCounter("requests", s.clock.Now()),
	})
}
