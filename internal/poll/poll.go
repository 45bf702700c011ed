// Package poll provides the fixed-interval refresh loop used wherever a
// view re-fetches state on a timer instead of receiving pushes.
package poll

import (
	"context"
	"time"
)

// Run calls fn every interval until ctx is cancelled, then returns. The
// first call happens after one full interval, and the loop leaves no
// timer behind once the subscriber's context ends.
func Run(ctx context.Context, interval time.Duration, fn func()) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			fn()
		}
	}
}
