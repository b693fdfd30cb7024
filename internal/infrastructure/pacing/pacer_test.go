package pacing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDelay_Wait(t *testing.T) {
	t.Run("waits the configured delay", func(t *testing.T) {
		p := NewFixedDelay(10 * time.Millisecond)

		start := time.Now()
		err := p.Wait(context.Background())

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("returns early on cancellation", func(t *testing.T) {
		p := NewFixedDelay(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- p.Wait(ctx) }()
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Wait did not return after cancellation")
		}
	})

	t.Run("zero delay never blocks", func(t *testing.T) {
		p := NewFixedDelay(0)
		assert.NoError(t, p.Wait(context.Background()))
	})
}

func TestNop_Wait(t *testing.T) {
	assert.NoError(t, Nop{}.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Nop{}.Wait(ctx), context.Canceled)
}
