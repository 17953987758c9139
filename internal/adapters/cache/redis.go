// Package cache provides a small read-through cache used by the public
// listing endpoints. A nil *Cache disables caching, so the server degrades
// gracefully when no Redis is configured or the connection fails.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client with a fixed TTL and key prefix.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// New connects to Redis and returns a Cache. It returns nil (caching
// disabled) when addr is empty or the server does not answer a short ping.
func New(addr, password string, db int, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return &Cache{client: client, ttl: ttl, prefix: "venuehub:cache:"}
}

// Get returns the cached value for key, or ok=false on miss or error.
// A nil receiver always misses.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores value under key with the configured TTL. Errors are swallowed:
// a cache write failure must never fail the request.
func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if c == nil {
		return
	}
	_ = c.client.Set(ctx, c.prefix+key, value, c.ttl).Err()
}

// Invalidate removes keys with the given suffixes. Used after mutations so
// the public listings do not serve stale decisions for a full TTL.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	_ = c.client.Del(ctx, full...).Err()
}
