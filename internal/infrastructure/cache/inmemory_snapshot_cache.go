package cache

import (
	"context"
	"sync"
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
)

// InMemorySnapshotCache implements lms.SnapshotCache using process memory
// This is suitable for single-instance deployments and testing
type InMemorySnapshotCache struct {
	mu        sync.RWMutex
	snapshot  *lms.Snapshot
	expiresAt time.Time
	ttl       time.Duration
}

// NewInMemorySnapshotCache creates a new in-memory snapshot cache.
// A zero TTL means entries never expire.
func NewInMemorySnapshotCache(ttl time.Duration) *InMemorySnapshotCache {
	return &InMemorySnapshotCache{ttl: ttl}
}

// Get returns the cached snapshot, or nil on a miss or after expiry
func (c *InMemorySnapshotCache) Get(ctx context.Context) (*lms.Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil {
		return nil, nil
	}
	if c.ttl > 0 && time.Now().After(c.expiresAt) {
		return nil, nil
	}
	return c.snapshot, nil
}

// Put stores a snapshot, replacing any previous one
func (c *InMemorySnapshotCache) Put(ctx context.Context, snapshot *lms.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snapshot
	if c.ttl > 0 {
		c.expiresAt = time.Now().Add(c.ttl)
	}
	return nil
}

// Invalidate drops the cached snapshot
func (c *InMemorySnapshotCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
	return nil
}

// Ensure InMemorySnapshotCache implements lms.SnapshotCache
var _ lms.SnapshotCache = (*InMemorySnapshotCache)(nil)
