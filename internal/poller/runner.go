// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run polls, hands each result to handle, then sleeps the full interval.
// Fixed delay: cycle duration is not subtracted. No overlap. No retries.
func (p *Poller) Run(ctx context.Context, handle func(PollResult)) {
	for {
		handle(p.PollOnce())

		timer := time.NewTimer(p.cfg.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
