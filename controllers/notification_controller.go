package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goalsync/goalsync/models"
	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/stores"
	"github.com/goalsync/goalsync/utils"
)

// NotificationController serves the per-user inbox.
type NotificationController struct {
	notifications *stores.NotificationStore
	clock         services.Clock
}

// NewNotificationController creates a new NotificationController instance.
func NewNotificationController(notifications *stores.NotificationStore, clock services.Clock) *NotificationController {
	return &NotificationController{notifications: notifications, clock: clock}
}

// inboxEntry is a notification resolved against the display table.
type inboxEntry struct {
	models.Notification
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Priority string `json:"priority"`
	TimeAgo  string `json:"time_ago"`
}

// List returns the user's notifications, newest first.
func (n *NotificationController) List(ctx *gin.Context) {
	userID := actingUser(ctx)
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing user_id")
		return
	}
	limit := parseLimit(ctx.Query("limit"), 50, 200)
	unreadOnly := ctx.Query("unread_only") == "true"

	now := n.clock.Now()
	items := n.notifications.ByUser(userID, limit, unreadOnly)
	entries := make([]inboxEntry, 0, len(items))
	for _, item := range items {
		_, nt := models.NotificationTypeFor(item.Type)
		entries = append(entries, inboxEntry{
			Notification: item,
			Icon:         nt.Icon,
			Color:        nt.Color,
			Priority:     nt.Priority,
			TimeAgo:      utils.TimeAgo(item.CreatedAt, now),
		})
	}
	utils.Success(ctx, gin.H{"items": entries, "total": len(entries)})
}

// Summary returns badge counts for the notification bell.
func (n *NotificationController) Summary(ctx *gin.Context) {
	userID := actingUser(ctx)
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing user_id")
		return
	}
	total, unread, hasHighPriority := n.notifications.Summary(userID)
	utils.Success(ctx, gin.H{
		"total":             total,
		"unread":            unread,
		"has_high_priority": hasHighPriority,
	})
}

// MarkRead flags one notification as read.
func (n *NotificationController) MarkRead(ctx *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "invalid request payload")
		return
	}
	if !n.notifications.MarkRead(req.UserID, ctx.Param("id")) {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "notification not found")
		return
	}
	utils.Success(ctx, gin.H{"message": "marked read"})
}

// MarkAllRead flags the whole inbox as read.
func (n *NotificationController) MarkAllRead(ctx *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "invalid request payload")
		return
	}
	n.notifications.MarkAllRead(req.UserID)
	utils.Success(ctx, gin.H{"message": "all marked read"})
}
