// Package cache implements the stats cache on Redis.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inviteable/backend/internal/application/adapter"
)

// statsCache implements the adapter.StatsCache interface using Redis.
type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a new Redis-backed stats cache.
func NewStatsCache(client *redis.Client, ttl time.Duration) adapter.StatsCache {
	return &statsCache{
		client: client,
		ttl:    ttl,
	}
}

// GetCount returns the cached counter for key, with found=false on a miss.
func (c *statsCache) GetCount(ctx context.Context, key string) (int64, bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// A corrupt value is treated as a miss so it gets rewritten.
		return 0, false, nil
	}
	return value, true, nil
}

// SetCount stores a counter under key with the configured TTL.
func (c *statsCache) SetCount(ctx context.Context, key string, value int64) error {
	return c.client.Set(ctx, key, strconv.FormatInt(value, 10), c.ttl).Err()
}
