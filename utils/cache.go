// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tidyops/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds in-flight booking sessions.
	SessionCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// AnalyticsCacheClient memoizes computed dashboard metrics.
	AnalyticsCacheClient *redis.Client
)

// InitRedis initializes every Redis client the application uses.
func InitRedis() {
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Session")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth")
	AnalyticsCacheClient = newRedisClient(config.AppConfig.RedisAnalyticsDB, "Analytics")
}

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// GetSessionCacheClient returns the booking session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Session")
	}
	return SessionCacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth")
	}
	return AuthCacheClient
}

// GetAnalyticsCacheClient returns the Redis client for analytics caching.
func GetAnalyticsCacheClient() *redis.Client {
	if AnalyticsCacheClient == nil {
		AnalyticsCacheClient = newRedisClient(config.AppConfig.RedisAnalyticsDB, "Analytics")
	}
	return AnalyticsCacheClient
}
