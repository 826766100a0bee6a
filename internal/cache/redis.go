// Package cache provides a Redis-backed result cache for generated queries.
// Entries are keyed by the exact extracted SQL string: two logically identical
// queries that differ in whitespace or casing are distinct entries.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vokinneberg/sqlchart/internal/types"
)

// DefaultTTL is the expiry applied when no explicit TTL is given.
const DefaultTTL = time.Hour

// Redis wraps a Redis client and (de)serializes cache entries as JSON.
type Redis struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// New creates a cache gateway connected to the given Redis host and port.
// A zero defaultTTL means DefaultTTL.
func New(host string, port int, defaultTTL time.Duration) *Redis {
	if defaultTTL == 0 {
		defaultTTL = DefaultTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port),
	})
	return &Redis{client: client, defaultTTL: defaultTTL}
}

// NewWithClient wraps an existing Redis client. Used by tests.
func NewWithClient(client *redis.Client, defaultTTL time.Duration) *Redis {
	if defaultTTL == 0 {
		defaultTTL = DefaultTTL
	}
	return &Redis{client: client, defaultTTL: defaultTTL}
}

// Get returns the cached entry for key, or nil when the key is absent. A
// corrupt entry counts as absent: the caller regenerates and overwrites it.
func (r *Redis) Get(ctx context.Context, key string) (*types.CacheEntry, error) {
	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var entry types.CacheEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		slog.Warn("Discarding corrupt cache entry", "key", key, "error", err)
		return nil, nil
	}
	return &entry, nil
}

// Set stores entry under key with the given TTL. A zero TTL means the
// gateway's default expiry.
func (r *Redis) Set(ctx context.Context, key string, entry *types.CacheEntry, ttl time.Duration) error {
	if ttl == 0 {
		ttl = r.defaultTTL
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Ping verifies connectivity to the Redis server.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache ping: %w", err)
	}
	return nil
}

// Close releases the underlying client connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
