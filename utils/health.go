package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a point-in-time snapshot of the app's external dependencies.
type HealthStatus struct {
	Healthy    bool            `json:"healthy"`
	Components map[string]bool `json:"components"`
	CheckedAt  time.Time       `json:"checked_at"`
}

var (
	healthMu      sync.RWMutex
	currentHealth HealthStatus
)

// GetHealthStatus returns the most recent health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes the session cache and the booking database on a
// fixed interval, keeping an in-memory snapshot for the health endpoint. The
// first probe runs immediately so the endpoint never reports a zero value.
func StartHealthMonitor(sessionCache *redis.Client, mongoClient *mongo.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		components := map[string]bool{
			"session_cache": sessionCache.Ping(ctx).Err() == nil,
			"database":      mongoClient.Ping(ctx, nil) == nil,
		}
		healthy := true
		for _, ok := range components {
			healthy = healthy && ok
		}

		healthMu.Lock()
		currentHealth = HealthStatus{
			Healthy:    healthy,
			Components: components,
			CheckedAt:  time.Now(),
		}
		healthMu.Unlock()
	}

	go func() {
		probe()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
