package cache_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/cache"
)

func counter() (cache.Factory[string, int32], *atomic.Int32) {
	var calls atomic.Int32
	return func(context.Context, string) (int32, error) {
		return calls.Add(1), nil
	}, &calls
}

func TestBackgroundRefresh_ServesStaleUntilRefreshed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := newFakeClock()
	factory, calls := counter()

	c := cache.NewBackgroundRefresh(factory,
		cache.WithStrategy[string, int32](cache.After[int32](time.Minute)),
		cache.WithClock[string, int32](clock.Now),
	)

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)

	clock.Advance(2 * time.Minute)
	v, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int32(1), v, "expired value is served until the next refresh")
	assert.Equal(t, int32(1), calls.Load())

	n, err := c.RefreshExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	v, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)

	n, err = c.RefreshExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "fresh entries are left alone")

	assert.Equal(t, cache.Stats{Requests: 3, Hits: 2, Misses: 1, Updates: 1}, c.Statistics())
}

func TestBackgroundRefresh_PerKeyFactory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := cache.NewBackgroundRefresh[string, string](nil)

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrKeyNotFound)

	require.NoError(t, c.AddWithFactory(ctx, "greeting", "hi", func(context.Context, string) (string, error) {
		return "hello", nil
	}))
	require.NoError(t, c.AddFactory(ctx, "farewell", func(context.Context, string) (string, error) {
		return "bye", nil
	}))
	require.NoError(t, c.Add(ctx, "static", "fixed"))

	v, err := c.Get(ctx, "farewell")
	require.NoError(t, err)
	assert.Empty(t, v, "placeholder until the first refresh")

	_, err = c.Expire(ctx, "greeting")
	require.NoError(t, err)
	_, err = c.Expire(ctx, "static")
	require.NoError(t, err)

	n, err := c.RefreshExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "static has no factory and stays expired")

	for key, want := range map[string]string{"greeting": "hello", "farewell": "bye", "static": "fixed"} {
		v, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, v, key)
	}
}

func TestBackgroundRefresh_FactoryError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	var fail atomic.Bool
	c := cache.NewBackgroundRefresh(func(context.Context, string) (string, error) {
		if fail.Load() {
			return "", boom
		}
		return "ok", nil
	}, cache.WithStrategy[string, string](cache.Always[string]()))

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "ok", v)

	fail.Store(true)
	n, err := c.RefreshExpired(ctx)
	require.ErrorIs(t, err, cache.ErrFactoryFailed)
	require.ErrorIs(t, err, boom)
	assert.Zero(t, n)

	v, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "ok", v, "stale value survives a failed refresh")

	_, err = c.Get(ctx, "other")
	assert.ErrorIs(t, err, boom)
}

func TestBackgroundRefresh_SkipsRemovedEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := cache.NewBackgroundRefresh(func(context.Context, string) (string, error) {
		return "rebuilt", nil
	}, cache.WithStrategy[string, string](cache.Always[string]()))

	require.NoError(t, c.Add(ctx, "gone", "v"))
	_, err := c.Remove(ctx, "gone")
	require.NoError(t, err)

	n, err := c.RefreshExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	size, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestBackgroundRefresh_WithJanitor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := newFakeClock()
	factory, _ := counter()

	c := cache.NewBackgroundRefresh(factory,
		cache.WithStrategy[string, int32](cache.After[int32](time.Minute)),
		cache.WithClock[string, int32](clock.Now),
	)
	for _, k := range []string{"a", "b"} {
		_, err := c.Get(ctx, k)
		require.NoError(t, err)
	}

	j := cache.NewJanitor(cache.WithJanitorClock(clock.Now))
	require.NoError(t, j.Register("refresh", c, 30*time.Second))

	clock.Advance(30 * time.Second)
	assert.Zero(t, j.Sweep(ctx), "nothing expired yet")

	clock.Advance(45 * time.Second)
	assert.Equal(t, 2, j.Sweep(ctx))

	a, err := c.Get(ctx, "a")
	require.NoError(t, err)
	b, err := c.Get(ctx, "b")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int32{3, 4}, []int32{a, b})
}
