package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goalsync/goalsync/models"
	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
	"github.com/goalsync/goalsync/utils"
)

// GoalController manages CRUD operations for goals.
type GoalController struct {
	goals *stores.GoalStore
	clock services.Clock
}

// NewGoalController creates a new GoalController instance.
func NewGoalController(goals *stores.GoalStore, clock services.Clock) *GoalController {
	return &GoalController{goals: goals, clock: clock}
}

// Create adds a goal for the given user.
func (g *GoalController) Create(ctx *gin.Context) {
	var req struct {
		UserID      string `json:"user_id" binding:"required"`
		Title       string `json:"title" binding:"required,min=1"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Frequency   string `json:"frequency"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "invalid request payload")
		return
	}

	title := utils.SanitizeTrim(req.Title)
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "title cannot be empty")
		return
	}
	category := req.Category
	if category == "" {
		category = "general"
	}
	frequency := req.Frequency
	if frequency == "" {
		frequency = "daily"
	}
	if frequency != "daily" && frequency != "weekly" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "frequency must be daily or weekly")
		return
	}

	goal := models.Goal{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Title:       title,
		Description: utils.SanitizeTrim(req.Description),
		Category:    category,
		Frequency:   frequency,
		CreatedAt:   g.clock.Now(),
	}
	g.goals.Put(goal)
	utils.Success(ctx, gin.H{"goal": goal})
}

// List returns the user's goals in creation order.
func (g *GoalController) List(ctx *gin.Context) {
	userID := actingUser(ctx)
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing user_id")
		return
	}
	goals := g.goals.ByUser(userID)
	utils.Success(ctx, gin.H{"items": goals, "total": len(goals)})
}

// Get returns a single goal.
func (g *GoalController) Get(ctx *gin.Context) {
	goal, ok := g.goals.Get(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "goal not found")
		return
	}
	utils.Success(ctx, gin.H{"goal": goal})
}

// Update edits a goal's descriptive fields. Streak counters are owned by the
// check-in flow and cannot be set here.
func (g *GoalController) Update(ctx *gin.Context) {
	var req struct {
		UserID      string `json:"user_id" binding:"required"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "invalid request payload")
		return
	}

	goal, ok := g.goals.Get(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "goal not found")
		return
	}
	if goal.UserID != req.UserID {
		utils.Error(ctx, http.StatusForbidden, 40300, "you can only update your own goals")
		return
	}

	goal, _ = g.goals.Update(goal.ID, func(stored *models.Goal) {
		if title := utils.SanitizeTrim(req.Title); title != "" {
			stored.Title = title
		}
		if req.Description != "" {
			stored.Description = utils.SanitizeTrim(req.Description)
		}
		if req.Category != "" {
			stored.Category = req.Category
		}
	})
	utils.Success(ctx, gin.H{"goal": goal})
}

// Delete removes a goal.
func (g *GoalController) Delete(ctx *gin.Context) {
	userID := actingUser(ctx)
	goal, ok := g.goals.Get(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "goal not found")
		return
	}
	if userID != "" && goal.UserID != userID {
		utils.Error(ctx, http.StatusForbidden, 40300, "you can only delete your own goals")
		return
	}
	g.goals.Delete(goal.ID)
	utils.Success(ctx, gin.H{"message": "goal deleted"})
}
