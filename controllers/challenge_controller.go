package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goalsync/goalsync/models"
	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
	"github.com/goalsync/goalsync/utils"
)

// ChallengeController serves the challenge catalogue and delegates the
// participation state machine to ChallengeService.
type ChallengeController struct {
	challenges *services.ChallengeService
	users      *stores.UserStore
	clock      services.Clock
}

// NewChallengeController creates a new ChallengeController instance.
func NewChallengeController(challenges *services.ChallengeService, users *stores.UserStore, clock services.Clock) *ChallengeController {
	return &ChallengeController{challenges: challenges, users: users, clock: clock}
}

// activeChallenge is a catalogue entry annotated with live participation.
type activeChallenge struct {
	models.ChallengeDef
	Participants    int     `json:"participants"`
	UserJoined      bool    `json:"user_joined"`
	EndsIn          string  `json:"ends_in,omitempty"`
	UserCheckins    int     `json:"user_checkins"`
	ProgressPercent float64 `json:"progress_percent"`
	Completed       bool    `json:"completed"`
}

// Active lists every challenge with the caller's participation folded in.
func (c *ChallengeController) Active(ctx *gin.Context) {
	userID := actingUser(ctx)
	now := c.clock.Now()

	items := make([]activeChallenge, 0, len(models.Challenges))
	for _, def := range models.Challenges {
		item := activeChallenge{
			ChallengeDef: def,
			Participants: def.BaseParticipants + c.challenges.ParticipantCount(def.ID),
		}
		if userID != "" {
			if p, ok := c.challenges.Participation(def.ID, userID); ok {
				item.UserJoined = true
				item.UserCheckins = p.Checkins
				item.Completed = p.Completed
				item.ProgressPercent = round1(float64(p.Checkins) / float64(def.GoalCheckins) * 100)

				daysLeft := def.DurationDays - int(now.Sub(p.JoinedAt).Hours()/24)
				if daysLeft <= 0 {
					item.EndsIn = "Ended"
				} else {
					item.EndsIn = fmt.Sprintf("%d days", daysLeft)
				}
			}
		}
		items = append(items, item)
	}

	utils.Success(ctx, gin.H{"items": items, "total": len(items)})
}

// Join enrolls the user in a challenge.
func (c *ChallengeController) Join(ctx *gin.Context) {
	userID, ok := c.bindUser(ctx)
	if !ok {
		return
	}
	def, err := c.challenges.Join(ctx.Param("id"), userID)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{
		"message":   fmt.Sprintf("Joined %s", def.Name),
		"challenge": def,
	})
}

// Leave removes the user from a challenge, discarding their progress.
func (c *ChallengeController) Leave(ctx *gin.Context) {
	userID, ok := c.bindUser(ctx)
	if !ok {
		return
	}
	if err := c.challenges.Leave(ctx.Param("id"), userID); err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"message": "left challenge"})
}

// Checkin records one challenge check-in for the user.
func (c *ChallengeController) Checkin(ctx *gin.Context) {
	userID, ok := c.bindUser(ctx)
	if !ok {
		return
	}
	res, err := c.challenges.RecordCheckin(ctx.Param("id"), userID)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, res)
}

// Progress returns the caller's standing in a challenge.
func (c *ChallengeController) Progress(ctx *gin.Context) {
	userID := actingUser(ctx)
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing user_id")
		return
	}
	prog, err := c.challenges.Progress(ctx.Param("id"), userID)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, prog)
}

type challengeLeaderboardRow struct {
	services.ChallengeRank
	UserName      string `json:"user_name"`
	Avatar        string `json:"avatar"`
	IsCurrentUser bool   `json:"is_current_user"`
}

// Leaderboard ranks every participant of a challenge.
func (c *ChallengeController) Leaderboard(ctx *gin.Context) {
	userID := actingUser(ctx)
	ranks, err := c.challenges.Leaderboard(ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}

	rows := make([]challengeLeaderboardRow, 0, len(ranks))
	for _, r := range ranks {
		row := challengeLeaderboardRow{ChallengeRank: r, UserName: "Unknown", Avatar: "👤", IsCurrentUser: r.UserID == userID}
		if u, ok := c.users.Get(r.UserID); ok {
			row.UserName = u.DisplayName
			row.Avatar = u.Avatar
		}
		rows = append(rows, row)
	}
	utils.Success(ctx, gin.H{"entries": rows, "total": len(rows)})
}

func (c *ChallengeController) bindUser(ctx *gin.Context) (string, bool) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "invalid request payload")
		return "", false
	}
	return req.UserID, true
}
