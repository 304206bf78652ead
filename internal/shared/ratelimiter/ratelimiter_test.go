package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_WaitIfNeeded(t *testing.T) {
	t.Parallel()

	var slept []time.Duration
	rl := NewRateLimiter(2, time.Minute)
	rl.sleep = func(d time.Duration) { slept = append(slept, d) }

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()
	assert.Empty(t, slept, "calls within the limit should not wait")

	rl.WaitIfNeeded()
	require.Len(t, slept, 1)
	assert.Greater(t, slept[0], time.Duration(0))
	assert.LessOrEqual(t, slept[0], time.Minute)
	assert.Equal(t, 1, rl.count, "window restarts after waiting")
}

func TestRateLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Millisecond)
	rl.sleep = func(time.Duration) { t.Error("should not sleep after the window elapsed") }

	rl.WaitIfNeeded()
	time.Sleep(5 * time.Millisecond)
	rl.WaitIfNeeded()
}

func TestPacer_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		n          int
		wantPauses int
	}{
		{"empty batch", 0, 0},
		{"single item never pauses", 1, 0},
		{"pauses between items only", 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var pauses []time.Duration
			p := NewPacer(time.Second)
			p.wait = func(_ context.Context, d time.Duration) error {
				pauses = append(pauses, d)
				return nil
			}

			var order []int
			err := p.Run(context.Background(), tt.n, func(_ context.Context, i int) {
				order = append(order, i)
			})

			require.NoError(t, err)
			assert.Len(t, order, tt.n)
			for i, v := range order {
				assert.Equal(t, i, v)
			}
			assert.Len(t, pauses, tt.wantPauses)
			for _, d := range pauses {
				assert.Equal(t, time.Second, d)
			}
			assert.Equal(t, 1, p.Concurrency())
		})
	}
}

func TestPacer_Run_ContextCancelled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cancelAt int
	}{
		{"during first item", 0},
		{"during middle item", 1},
		{"during last item", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			p := NewPacer(time.Hour)

			calls := 0
			err := p.Run(ctx, 3, func(_ context.Context, i int) {
				calls++
				if i == tt.cancelAt {
					cancel()
				}
			})

			assert.ErrorIs(t, err, context.Canceled)
			assert.Equal(t, tt.cancelAt+1, calls)
		})
	}
}

func TestPacer_Run_ZeroDelay(t *testing.T) {
	t.Parallel()

	p := NewPacer(0)
	calls := 0
	err := p.Run(context.Background(), 5, func(context.Context, int) { calls++ })

	require.NoError(t, err)
	assert.Equal(t, 5, calls)
}
