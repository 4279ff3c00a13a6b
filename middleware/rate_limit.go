package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/goalsync/goalsync/config"
	"github.com/goalsync/goalsync/utils"
)

type clientLimiter struct {
	limiter *rate.Limiter
	expires time.Time
	mu      sync.Mutex
}

var (
	limiters   = map[string]*clientLimiter{}
	limitersMu sync.Mutex
)

// RateLimit applies a per-IP token-bucket rate limiter. Idle clients are
// swept opportunistically on lookup.
func RateLimit() gin.HandlerFunc {
	cfg := config.Get()
	perMinute := cfg.RateLimitPerMinute
	if perMinute < 1 {
		perMinute = 1
	}
	r := rate.Every(time.Minute / time.Duration(perMinute))
	burst := perMinute / 2
	if burst < 1 {
		burst = 1
	}

	return func(ctx *gin.Context) {
		cl := getLimiter(ctx.ClientIP(), r, burst)

		cl.mu.Lock()
		allowed := cl.limiter.Allow()
		cl.mu.Unlock()

		if !allowed {
			utils.Error(ctx, 429, utils.CodeRateLimited, "rate limit exceeded")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

func getLimiter(key string, limit rate.Limit, burst int) *clientLimiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	sweepExpiredLocked()

	if cl, ok := limiters[key]; ok {
		cl.expires = time.Now().Add(5 * time.Minute)
		return cl
	}

	cl := &clientLimiter{
		limiter: rate.NewLimiter(limit, burst),
		expires: time.Now().Add(5 * time.Minute),
	}
	limiters[key] = cl
	return cl
}

func sweepExpiredLocked() {
	now := time.Now()
	for key, cl := range limiters {
		if now.After(cl.expires) {
			delete(limiters, key)
		}
	}
}
