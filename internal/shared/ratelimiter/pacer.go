package ratelimiter

import (
	"context"
	"time"
)

// Pacer runs a batch of items one at a time with a fixed pause between
// consecutive items. It keeps the request rate under an external limit
// without any shared window state.
type Pacer struct {
	Delay time.Duration // pause between two items; none after the last

	wait func(ctx context.Context, d time.Duration) error
}

// NewPacer returns a Pacer pausing delay between items.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{Delay: delay}
}

// Concurrency is always 1: items never overlap.
func (p *Pacer) Concurrency() int { return 1 }

// Run calls fn for i in [0, n) in order. It stops early and returns the
// context error if ctx is cancelled before or between items, and still
// returns it when ctx was cancelled while the last item ran.
func (p *Pacer) Run(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(ctx, i)
		if i < n-1 && p.Delay > 0 {
			if err := p.pause(ctx, p.Delay); err != nil {
				return err
			}
		}
	}
	return ctx.Err()
}

func (p *Pacer) pause(ctx context.Context, d time.Duration) error {
	if p.wait != nil {
		return p.wait(ctx, d)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
