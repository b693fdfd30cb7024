package cache

import (
	"fmt"
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SnapshotCacheFactory creates snapshot caches based on configuration
type SnapshotCacheFactory struct {
	redisConfig           config.RedisConfig
	ttl                   time.Duration
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// SnapshotCacheFactoryOption is a functional option for configuring the factory
type SnapshotCacheFactoryOption func(*SnapshotCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) SnapshotCacheFactoryOption {
	return func(f *SnapshotCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is unavailable. Default is true (allow fallback).
func WithInMemoryFallback(allow bool) SnapshotCacheFactoryOption {
	return func(f *SnapshotCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewSnapshotCacheFactory creates a new factory
func NewSnapshotCacheFactory(cfg config.RedisConfig, ttl time.Duration, opts ...SnapshotCacheFactoryOption) *SnapshotCacheFactory {
	f := &SnapshotCacheFactory{
		redisConfig:           cfg,
		ttl:                   ttl,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed snapshot cache
func (f *SnapshotCacheFactory) CreateRedisCache() (lms.SnapshotCache, error) {
	redisCfg := RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}

	c, err := NewRedisSnapshotCache(redisCfg, f.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis snapshot cache: %w", err)
	}

	return c, nil
}

// CreateInMemoryCache creates an in-memory snapshot cache.
// WARNING: In-memory caches do not share state across process instances,
// so every instance re-crawls the LMS independently.
func (f *SnapshotCacheFactory) CreateInMemoryCache() lms.SnapshotCache {
	return NewInMemorySnapshotCache(f.ttl)
}

// CreateCache creates a snapshot cache based on whether Redis is available.
// It tries Redis first and falls back to in-memory if Redis is unavailable
// and fallback is allowed.
func (f *SnapshotCacheFactory) CreateCache() (lms.SnapshotCache, error) {
	c, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis snapshot cache")
		return c, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for snapshot cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory snapshot cache. "+
		"Each instance will fetch its own LMS snapshots.",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), nil
}
