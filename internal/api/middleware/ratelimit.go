package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type rateLimitError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RateLimit enforces a fixed-window per-user cap, meant for the tailoring
// endpoint where every request may cost an LLM call. A nil client disables
// limiting; Redis outages fail open so the limiter can never take the
// product down.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, l *logrus.Logger) gin.HandlerFunc {
	if l == nil {
		l = logrus.New()
	}

	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		if userID == "" {
			userID = c.ClientIP()
		}

		bucket := time.Now().UTC().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:tailor:%s:%d", userID, bucket)

		ctx := c.Request.Context()
		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			l.WithError(err).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if n == 1 {
			_ = rdb.Expire(ctx, key, window).Err()
		}

		if n > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, rateLimitError{
				Error: "too many tailoring requests, try again shortly",
			})
			return
		}

		c.Next()
	}
}
