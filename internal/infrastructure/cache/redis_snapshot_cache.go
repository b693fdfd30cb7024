package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/redis/go-redis/v9"
)

// RedisSnapshotCache implements lms.SnapshotCache using Redis
// This is suitable for distributed deployments where multiple instances
// need to share the cached LMS universe
type RedisSnapshotCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisSnapshotCache creates a new Redis-based snapshot cache
func NewRedisSnapshotCache(cfg RedisConfig, ttl time.Duration) (*RedisSnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSnapshotCache{
		client: client,
		key:    "lms:snapshot",
		ttl:    ttl,
	}, nil
}

// NewRedisSnapshotCacheWithClient creates a cache with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisSnapshotCacheWithClient(client *redis.Client, key string, ttl time.Duration) *RedisSnapshotCache {
	if key == "" {
		key = "lms:snapshot"
	}
	return &RedisSnapshotCache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Get returns the cached snapshot, or nil on a miss
func (c *RedisSnapshotCache) Get(ctx context.Context) (*lms.Snapshot, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached snapshot: %w", err)
	}

	var snapshot lms.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cached snapshot: %w", err)
	}
	return &snapshot, nil
}

// Put stores a snapshot with the configured TTL
func (c *RedisSnapshotCache) Put(ctx context.Context, snapshot *lms.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot
func (c *RedisSnapshotCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}

// Ensure RedisSnapshotCache implements lms.SnapshotCache
var _ lms.SnapshotCache = (*RedisSnapshotCache)(nil)
