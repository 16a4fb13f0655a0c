package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mdhaziqomar/memories/logger"
	"github.com/mdhaziqomar/memories/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// UploadRateLimiter is a fixed-window per-user limiter backed by redis.
// Must run after AuthRequired so the principal id is available as the key.
func UploadRateLimiter(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(ContextUserID)
		key := fmt.Sprintf("ratelimit:upload:%d", userID)

		ctx := c.Request.Context()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down should not take uploads down with it.
			logger.Warnf("upload rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}
		if count > int64(limit) {
			utils.Error(c, http.StatusTooManyRequests, "too many uploads, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
