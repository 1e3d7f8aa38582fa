package sim

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The lock-step driver must be indistinguishable from the sequential
// one for pure strategies: same frames, same order, bit for bit.
func TestLockstepMatchesSequential(t *testing.T) {
	e := NewEngine(DefaultConfig())

	collect := func(ch <-chan Frame) []Frame {
		var out []Frame
		for fr := range ch {
			out = append(out, fr)
		}
		return out
	}

	seq := collect(e.Run(context.Background(), idle, creep))
	lock := collect(e.RunLockstep(context.Background(), idle, creep))

	require.NotEmpty(t, seq)
	assert.Equal(t, seq, lock)
}

func TestLockstepCancelled(t *testing.T) {
	e := NewEngine(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())

	frames := e.RunLockstep(ctx, idle, idle)

	// take a handful of frames, then pull the plug
	for i := 0; i < 10; i++ {
		_, ok := <-frames
		require.True(t, ok)
	}
	cancel()

	for range frames {
	}
	// the stream closed, so every task observed the cancellation and
	// exited instead of waiting on its peers
}

func TestBarrierRendezvous(t *testing.T) {
	b := newBarrier(3)
	ctx := context.Background()

	var wg sync.WaitGroup
	counters := [3]int{}
	for i := 0; i < 3; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				assert.NoError(t, b.await(ctx))
				counters[i]++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, [3]int{100, 100, 100}, counters)
}

func TestBarrierAbandoned(t *testing.T) {
	b := newBarrier(2)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- b.await(ctx)
	}()

	// the peer never shows up
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("await did not observe the cancellation")
	}
}
