package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the snapshot served by /health: Mongo plus the three
// per-concern Redis clients this service runs on.
type HealthStatus struct {
	Mongo          bool      `json:"mongo"`
	SessionCache   bool      `json:"sessionCache"`
	AuthCache      bool      `json:"authCache"`
	AnalyticsCache bool      `json:"analyticsCache"`
	CheckedAt      time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings Mongo and the per-concern Redis clients once
// a minute and keeps the result in memory for the health endpoint.
func StartHealthMonitor(mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			snapshot := HealthStatus{
				Mongo:          mongoClient.Ping(ctx, nil) == nil,
				SessionCache:   pingRedis(ctx, SessionCacheClient),
				AuthCache:      pingRedis(ctx, AuthCacheClient),
				AnalyticsCache: pingRedis(ctx, AnalyticsCacheClient),
				CheckedAt:      time.Now(),
			}
			cancel()

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}

func pingRedis(ctx context.Context, client *redis.Client) bool {
	return client != nil && client.Ping(ctx).Err() == nil
}
