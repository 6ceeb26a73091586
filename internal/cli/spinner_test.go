package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "working...")
	s.Start()

	s.Stop()
	s.Stop()

	if s.Cancelled() {
		// Stop cancels the inner context, so Cancelled is true after any Stop.
		// The call must simply not panic or deadlock.
		return
	}
}

func TestSpinnerFollowsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "working...")
	s.Start()
	cancel()

	// Give the goroutine time to notice the cancellation.
	time.Sleep(100 * time.Millisecond)
	if !s.Cancelled() {
		t.Error("spinner not cancelled after context cancellation")
	}
}
