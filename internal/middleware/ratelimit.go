package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimit enforces a fixed window of max requests per client IP, counted
// in redis. A nil client disables limiting; a redis failure fails open so
// the API never goes down with its limiter.
func RateLimit(
	rdb *redis.Client,
	name string,
	max int,
	window time.Duration,
	message string,
) gin.HandlerFunc {

	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": message,
			})
			return
		}

		c.Next()
	}
}
