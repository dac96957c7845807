package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health probes Postgres and the Redis token store. The two are reported
// separately because their failure modes differ: with Redis down nobody can
// authenticate even while visitor data is intact, and vice versa.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		pgState := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			pgState = "down"
		}

		redisState := "up"
		if rdb.Ping(ctx).Err() != nil {
			redisState = "down"
		}

		code := http.StatusOK
		overall := "ok"
		if pgState != "up" || redisState != "up" {
			code = http.StatusServiceUnavailable
			overall = "degraded"
		}

		c.JSON(code, gin.H{
			"status":      overall,
			"postgres":    pgState,
			"token_store": redisState,
		})
	}
}
