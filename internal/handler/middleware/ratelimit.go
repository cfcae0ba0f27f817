package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"meeting-scheduler/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error)
}

// RateLimit caps requests per client IP in bucket. When the limiter itself
// fails the request is let through.
func RateLimit(limiter RateLimiter, bucket string, limit int64, window time.Duration) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int((window + time.Second - 1) / time.Second))

	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), bucket+":"+c.ClientIP(), limit, window)
		if err != nil {
			RequestLogger(c).Warn("rate limiter unavailable", "bucket", bucket, "error", err.Error())
			c.Next()
			return
		}
		if !ok {
			c.Header("Retry-After", retryAfter)
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
