package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"candidate_admin/internal/shared/apperror"
)

// Limiter counts operations per key.
type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

// RateLimit rejects a client with 429 once it exceeds the limiter's quota.
// Clients are keyed by IP.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := l.Allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			_ = c.Error(apperror.New(http.StatusTooManyRequests, "too many requests", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}
