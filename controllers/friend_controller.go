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

// FriendController handles the friend request lifecycle:
// pending → accepted | rejected. Rejection is not terminal; the requester may
// try again.
type FriendController struct {
	friends      *stores.FriendshipStore
	users        *stores.UserStore
	achievements *services.AchievementService
	notify       *services.NotificationService
	clock        services.Clock
}

// NewFriendController creates a new FriendController instance.
func NewFriendController(friends *stores.FriendshipStore, users *stores.UserStore, achievements *services.AchievementService, notify *services.NotificationService, clock services.Clock) *FriendController {
	return &FriendController{friends: friends, users: users, achievements: achievements, notify: notify, clock: clock}
}

// Request sends a friend request addressed by username.
func (f *FriendController) Request(ctx *gin.Context) {
	var req struct {
		UserID   string `json:"user_id" binding:"required"`
		Username string `json:"username" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "invalid request payload")
		return
	}

	requester, ok := f.users.Get(req.UserID)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "user not found")
		return
	}
	addressee, ok := f.users.ByUsername(utils.SanitizeTrim(req.Username))
	if !ok {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "no user with that username")
		return
	}
	if addressee.ID == requester.ID {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "cannot friend yourself")
		return
	}

	if existing, found := f.friends.Between(requester.ID, addressee.ID); found {
		switch existing.Status {
		case models.FriendshipAccepted:
			utils.Error(ctx, http.StatusConflict, utils.CodeInvalidState, "already friends")
			return
		case models.FriendshipPending:
			utils.Error(ctx, http.StatusConflict, utils.CodeInvalidState, "request already pending")
			return
		case models.FriendshipRejected:
			// a rejected pair may reconnect; reopen the same record
			f.friends.Put(models.Friendship{
				ID:          existing.ID,
				RequesterID: requester.ID,
				AddresseeID: addressee.ID,
				Status:      models.FriendshipPending,
				CreatedAt:   f.clock.Now(),
			})
			f.notify.FriendRequest(addressee.ID, requester.DisplayName)
			utils.Success(ctx, gin.H{"message": "friend request sent", "friendship_id": existing.ID})
			return
		}
	}

	friendship := models.Friendship{
		ID:          uuid.NewString(),
		RequesterID: requester.ID,
		AddresseeID: addressee.ID,
		Status:      models.FriendshipPending,
		CreatedAt:   f.clock.Now(),
	}
	f.friends.Put(friendship)
	f.notify.FriendRequest(addressee.ID, requester.DisplayName)
	utils.Success(ctx, gin.H{"message": "friend request sent", "friendship_id": friendship.ID})
}

// Accept moves a pending request to accepted. Only the addressee may accept.
func (f *FriendController) Accept(ctx *gin.Context) {
	f.resolve(ctx, models.FriendshipAccepted)
}

// Reject moves a pending request to rejected. Only the addressee may reject.
func (f *FriendController) Reject(ctx *gin.Context) {
	f.resolve(ctx, models.FriendshipRejected)
}

func (f *FriendController) resolve(ctx *gin.Context, status string) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "invalid request payload")
		return
	}

	friendship, ok := f.friends.Get(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "friend request not found")
		return
	}
	if friendship.AddresseeID != req.UserID {
		utils.Error(ctx, http.StatusForbidden, 40300, "only the addressee can respond to a request")
		return
	}
	if friendship.Status != models.FriendshipPending {
		utils.Error(ctx, http.StatusConflict, utils.CodeInvalidState, "request is not pending")
		return
	}

	f.friends.SetStatus(friendship.ID, status)

	if status == models.FriendshipAccepted {
		for _, id := range []string{friendship.RequesterID, friendship.AddresseeID} {
			if f.friends.CountAcceptedFor(id) >= 5 {
				_, _ = f.achievements.Unlock(id, "social_butterfly")
			}
		}
	}
	utils.Success(ctx, gin.H{"message": "request " + status})
}

type friendRow struct {
	FriendshipID string `json:"friendship_id"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	Avatar       string `json:"avatar"`
}

// List returns the user's accepted friends with display info.
func (f *FriendController) List(ctx *gin.Context) {
	userID := actingUser(ctx)
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing user_id")
		return
	}

	accepted := f.friends.AcceptedFor(userID)
	rows := make([]friendRow, 0, len(accepted))
	for _, fr := range accepted {
		friendID := fr.RequesterID
		if friendID == userID {
			friendID = fr.AddresseeID
		}
		rows = append(rows, f.row(fr.ID, friendID))
	}
	utils.Success(ctx, gin.H{"items": rows, "total": len(rows)})
}

// Requests returns pending requests addressed to the user.
func (f *FriendController) Requests(ctx *gin.Context) {
	userID := actingUser(ctx)
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, "missing user_id")
		return
	}

	pending := f.friends.PendingFor(userID)
	rows := make([]friendRow, 0, len(pending))
	for _, fr := range pending {
		rows = append(rows, f.row(fr.ID, fr.RequesterID))
	}
	utils.Success(ctx, gin.H{"items": rows, "total": len(rows)})
}

func (f *FriendController) row(friendshipID, userID string) friendRow {
	r := friendRow{FriendshipID: friendshipID, UserID: userID, DisplayName: "Unknown", Avatar: "👤"}
	if u, ok := f.users.Get(userID); ok {
		r.Username = u.Username
		r.DisplayName = u.DisplayName
		r.Avatar = u.Avatar
	}
	return r
}
