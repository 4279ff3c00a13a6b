package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goalsync/goalsync/services"
	"github.com/goalsync/goalsync/utils"
)

// actingUser reads the acting user id from the query string. There is no
// auth layer; the id is trusted as supplied.
func actingUser(ctx *gin.Context) string {
	return strings.TrimSpace(ctx.Query("user_id"))
}

// parseLimit parses a limit query value with a default and a cap.
func parseLimit(raw string, def, max int) int {
	limit := def
	if v, err := strconv.Atoi(raw); err == nil && v > 0 {
		limit = v
	}
	if limit > max {
		limit = max
	}
	return limit
}

// fail maps a domain error onto the response envelope. Unexpected errors log
// at error level and return a generic 500 without leaking internals.
func fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		utils.Error(ctx, http.StatusConflict, utils.CodeInvalidState, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.Error(ctx, http.StatusBadRequest, utils.CodeInvalidParam, err.Error())
	default:
		if utils.Sugar != nil {
			utils.Sugar.Errorf("unexpected error on %s: %v", ctx.FullPath(), err)
		}
		utils.Error(ctx, http.StatusInternalServerError, utils.CodeServerError, "internal error")
	}
}
