package cache

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

func TestGetOrLoadCachesWithinTTL(t *testing.T) {
	c := New[int](time.Minute)
	ctx := context.Background()
	calls := 0

	load := func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	}

	v, err := c.GetOrLoad(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = c.GetOrLoad(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestInvalidateForcesReload(t *testing.T) {
	c := New[int](time.Minute)
	ctx := context.Background()
	calls := 0

	load := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, _ := c.GetOrLoad(ctx, "k", load)
	assert.Equal(t, 1, v)

	c.Invalidate("k")
	v, _ = c.GetOrLoad(ctx, "k", load)
	assert.Equal(t, 2, v)
}

func TestZeroTTLDisablesCaching(t *testing.T) {
	c := New[int](0)
	ctx := context.Background()
	calls := 0

	load := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, _ = c.GetOrLoad(ctx, "k", load)
	_, _ = c.GetOrLoad(ctx, "k", load)
	assert.Equal(t, 2, calls)
}

func TestLoadErrorsAreNotCached(t *testing.T) {
	c := New[int](time.Minute)
	ctx := context.Background()
	boom := errors.New("boom")
	fail := true

	load := func(ctx context.Context) (int, error) {
		if fail {
			return 0, boom
		}
		return 7, nil
	}

	_, err := c.GetOrLoad(ctx, "k", load)
	assert.ErrorIs(t, err, boom)

	fail = false
	v, err := c.GetOrLoad(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestConcurrentLoadsCoalesce(t *testing.T) {
	c := New[int](time.Minute)
	ctx := context.Background()
	var calls atomic.Int32
	gate := make(chan struct{})

	load := func(ctx context.Context) (int, error) {
		calls.Add(1)
		<-gate
		return 9, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrLoad(ctx, "k", load)
			assert.NoError(t, err)
			assert.Equal(t, 9, v)
		}()
	}
	// Let the goroutines pile up on the singleflight before releasing.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}
