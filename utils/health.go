package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services. Backends that
// are not configured are omitted.
type HealthStatus struct {
	Status    string          `json:"status"`
	Redis     map[string]bool `json:"redis,omitempty"`
	Mongo     *bool           `json:"mongo,omitempty"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthChecker pings whichever backends the process was started with.
type HealthChecker struct {
	RedisClients map[string]*redis.Client
	MongoClient  *mongo.Client
}

// Check performs one round of pings. Status is "ok" only when every
// configured backend answered.
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{Status: "ok", CheckedAt: time.Now()}

	if len(h.RedisClients) > 0 {
		status.Redis = make(map[string]bool, len(h.RedisClients))
		for name, client := range h.RedisClients {
			ok := client.Ping(ctx).Err() == nil
			status.Redis[name] = ok
			if !ok {
				status.Status = "degraded"
			}
		}
	}

	if h.MongoClient != nil {
		ok := h.MongoClient.Ping(ctx, nil) == nil
		status.Mongo = &ok
		if !ok {
			status.Status = "degraded"
		}
	}

	return status
}
