package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health pings Postgres and Redis and reports per-store status. The
// storefront cannot sell without either, so any failure turns the whole
// check into a 503.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbUp := false
		if sqlDB, err := db.DB(); err == nil && sqlDB.PingContext(ctx) == nil {
			dbUp = true
		}
		redisUp := rdb.Ping(ctx).Err() == nil

		code := http.StatusOK
		status := "ok"
		if !dbUp || !redisUp {
			code = http.StatusServiceUnavailable
			status = "degraded"
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": storeState(dbUp),
			"redis":    storeState(redisUp),
		})
	}
}

func storeState(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
