package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/internship/user-service/internal/api/metrics"
)

// defaultTTL bounds staleness: concurrent readers may observe a value for at
// most this window after a write whose invalidation raced them.
const defaultTTL = 30 * time.Minute

// Cache stores JSON-serialized response projections in Redis.
// Key format: <entity>:<lookup>:<value>, e.g. users:id:42, users:email:a@b.c
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a Cache wrapping the given Redis client. A non-positive
// ttl falls back to the 30-minute default.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest. A missing key is a
// miss, not an error.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheLookupsTotal.WithLabelValues(entityOf(key), "miss").Inc()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	metrics.CacheLookupsTotal.WithLabelValues(entityOf(key), "hit").Inc()
	return true, nil
}

// Set stores value under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete evicts the given keys. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	for _, k := range keys {
		metrics.CacheEvictionsTotal.WithLabelValues(entityOf(k)).Inc()
	}
	return nil
}

// entityOf extracts the partition prefix ("users", "cards") for metrics.
func entityOf(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
