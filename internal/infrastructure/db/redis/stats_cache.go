package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devnews/devnews-api/internal/core/ports"
)

const (
	statsKey = "stats:snapshot"
	statsTTL = 30 * time.Second
)

// StatsCache stores the dashboard snapshot in Redis for a short TTL so bursts
// of admin traffic don't fan out to six database reads each.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached snapshot, or nil when the cache is cold.
func (c *StatsCache) Get(ctx context.Context) (*ports.StatsSnapshot, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var snapshot ports.StatsSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &snapshot, nil
}

// Set stores the snapshot, expiring after statsTTL.
func (c *StatsCache) Set(ctx context.Context, snapshot *ports.StatsSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, statsTTL).Err()
}
