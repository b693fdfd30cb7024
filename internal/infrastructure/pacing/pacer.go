package pacing

import (
	"context"
	"time"
)

// DefaultInterCallDelay is the pause between consecutive LMS API calls.
// The LMS has no documented rate limit; this keeps bulk runs well under
// observed throttling thresholds.
const DefaultInterCallDelay = 300 * time.Millisecond

// Pacer throttles sequential external calls. Implementations must return
// promptly with the context's error once it is cancelled.
type Pacer interface {
	Wait(ctx context.Context) error
}

// FixedDelay paces calls with a constant sleep between them
type FixedDelay struct {
	delay time.Duration
}

// NewFixedDelay creates a pacer with the given inter-call delay
func NewFixedDelay(delay time.Duration) *FixedDelay {
	return &FixedDelay{delay: delay}
}

// NewDefault creates a pacer with the default inter-call delay
func NewDefault() *FixedDelay {
	return NewFixedDelay(DefaultInterCallDelay)
}

// Wait blocks for the configured delay or until the context is cancelled
func (p *FixedDelay) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Nop is a pacer that never waits. Tests use it so executor runs are
// synchronous and fast.
type Nop struct{}

// Wait returns immediately, honoring only cancellation
func (Nop) Wait(ctx context.Context) error {
	return ctx.Err()
}
