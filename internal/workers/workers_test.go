package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsEveryJobOnce(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	seen := map[int]int{}

	err := p.Run(context.Background(), 50, func(ctx context.Context, i int) error {
		mu.Lock()
		seen[i]++
		mu.Unlock()
		return nil
	})

	require.NoError(t, err)
	require.Len(t, seen, 50)
	for i, n := range seen {
		assert.Equal(t, 1, n, "job %d", i)
	}
}

func TestPool_RespectsLimit(t *testing.T) {
	p := NewPool(2)
	var inFlight, peak atomic.Int32

	err := p.Run(context.Background(), 20, func(ctx context.Context, i int) error {
		cur := inFlight.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestPool_FirstErrorStopsScheduling(t *testing.T) {
	p := NewPool(1)
	boom := errors.New("boom")
	var ran atomic.Int32

	err := p.Run(context.Background(), 100, func(ctx context.Context, i int) error {
		ran.Add(1)
		if i == 2 {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Less(t, ran.Load(), int32(100))
}

func TestPool_CancelledParent(t *testing.T) {
	p := NewPool(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	err := p.Run(ctx, 10, func(ctx context.Context, i int) error {
		ran.Add(1)
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, ran.Load())
}

func TestPool_ZeroJobs(t *testing.T) {
	require.NoError(t, NewPool(4).Run(context.Background(), 0, nil))
}

func TestNewPool_DefaultSize(t *testing.T) {
	assert.Positive(t, NewPool(0).Size())
	assert.Equal(t, 5, NewPool(5).Size())
}
