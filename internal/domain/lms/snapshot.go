package lms

import (
	"context"
	"time"
)

// Snapshot is one point-in-time fetch of the LMS user and group universe.
// Reconciliation runs work against a snapshot, never against live reads, so
// one run sees a consistent universe.
type Snapshot struct {
	Users     []User    `json:"users"`
	Groups    []Group   `json:"groups"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Age returns how old the snapshot is
func (s *Snapshot) Age() time.Duration {
	return time.Since(s.FetchedAt)
}

// SnapshotCache stores the most recent LMS snapshot between runs so repeated
// analyses do not re-crawl the LMS. Get returns nil without error on a miss.
type SnapshotCache interface {
	Get(ctx context.Context) (*Snapshot, error)
	Put(ctx context.Context, snapshot *Snapshot) error
	Invalidate(ctx context.Context) error
}
