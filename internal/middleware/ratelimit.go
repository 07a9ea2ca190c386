package middleware

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// gin-limit-by-key keeps one process-wide limiter set, so every call gets its
// own key prefix.
var limiterScope atomic.Uint64

// RateLimit allows perMinute requests per client IP with a burst of the same size.
// Each call has its own budget: routes sharing one returned handler share it.
// Idle limiters are dropped after an hour.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 1
	}
	prefix := strconv.FormatUint(limiterScope.Add(1), 10) + "|"
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return prefix + c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute), time.Hour
		},
		func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down a little!"})
		},
	)
}
