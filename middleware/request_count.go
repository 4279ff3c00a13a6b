package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goalsync/goalsync/utils"
)

// RequestCounter bumps the daily request counter surfaced by /stats. Counting
// happens after the handler so aborted requests still count.
func RequestCounter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		utils.IncrDailyCounter("requests", time.Now())
	}
}
