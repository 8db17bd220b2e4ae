package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	healthCheckInterval = 60 * time.Second
	healthProbeTimeout  = 5 * time.Second
)

// HealthStatus is one sweep of the dependency probes, one flag per backing
// service. The zero value reports everything down until the first sweep.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	AuthCache bool      `json:"authCache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	healthMu   sync.RWMutex
	lastHealth HealthStatus
)

// GetHealthStatus returns the snapshot taken by the most recent sweep.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return lastHealth
}

// StartHealthMonitor probes Mongo and both Redis clients on a fixed
// interval and stores the result for the health endpoint. Each sweep runs
// under a short timeout so a hung dependency cannot stall the monitor.
func StartHealthMonitor(mongoClient *mongo.Client, cache, authCache *redis.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
			snapshot := HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				Cache:     cache.Ping(ctx).Err() == nil,
				AuthCache: authCache.Ping(ctx).Err() == nil,
				CheckedAt: time.Now(),
			}
			cancel()

			healthMu.Lock()
			lastHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
