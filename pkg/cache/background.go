package cache

import (
	"context"
	"errors"
	"sync"
)

// BackgroundRefresh is a cache whose expired entries are rebuilt off the read
// path. Get serves stored values even once they expire and only calls the
// factory for missing keys. RefreshExpired replaces expired entries with
// fresh factory output; register the cache with a Janitor to run it on a
// schedule:
//
//	quotes := cache.NewBackgroundRefresh(loadQuote,
//		cache.WithStrategy[string, Quote](cache.After[Quote](time.Minute)))
//	_ = janitor.Register("quotes", quotes, 15*time.Second)
//
// A key may carry its own factory, set with AddWithFactory or AddFactory,
// which takes precedence over the cache-wide one.
type BackgroundRefresh[K comparable, V any] struct {
	*store[K, V]
	factory Factory[K, V]
	flight  keyedFlight[K]

	mu        sync.Mutex
	factories map[K]Factory[K, V]
}

var (
	_ Store[string, any] = (*BackgroundRefresh[string, any])(nil)
	_ Cleanup            = (*BackgroundRefresh[string, any])(nil)
)

// NewBackgroundRefresh creates a background refreshed cache. With a nil
// factory, Get on a key without its own factory returns ErrKeyNotFound.
func NewBackgroundRefresh[K comparable, V any](factory Factory[K, V], opts ...Option[K, V]) *BackgroundRefresh[K, V] {
	return &BackgroundRefresh[K, V]{
		store:     newStore(opts),
		factory:   factory,
		factories: make(map[K]Factory[K, V]),
	}
}

// Get returns the stored value for key, expired or not, building it with the
// factory when the key is missing.
func (c *BackgroundRefresh[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	c.stats.requests.Add(1)

	c.mu.Lock()
	e, ok, err := c.provider.Get(ctx, key)
	if err == nil && ok {
		e = e.touch(c.now())
		err = c.provider.Set(ctx, key, e)
	}
	c.mu.Unlock()

	if err != nil {
		return zero, err
	}
	if ok {
		c.stats.hits.Add(1)
		return e.Value, nil
	}

	c.stats.misses.Add(1)
	factory := c.factoryFor(key)
	if factory == nil {
		return zero, ErrKeyNotFound
	}

	v, err := c.flight.do(key, func() (any, error) {
		value, err := factory(ctx, key)
		if err != nil {
			return nil, errors.Join(ErrFactoryFailed, err)
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		e := NewEntry(value, c.now())
		if err := c.provider.Set(ctx, key, e); err != nil {
			return nil, err
		}
		return e, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(Entry[V]).Value, nil
}

// Add stores value under key, replacing any previous entry. The key keeps
// using the factory it was registered with, if any.
func (c *BackgroundRefresh[K, V]) Add(ctx context.Context, key K, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.updates.Add(1)
	return c.provider.Set(ctx, key, NewEntry(value, c.now()))
}

// AddWithFactory stores value under key and rebuilds it with factory once it
// expires. A nil factory falls back to the cache-wide one.
func (c *BackgroundRefresh[K, V]) AddWithFactory(ctx context.Context, key K, value V, factory Factory[K, V]) error {
	return c.set(ctx, key, NewEntry(value, c.now()), factory)
}

// AddFactory registers key with factory and an expired placeholder, so the
// next refresh pass builds its value. Until then Get returns the zero value.
func (c *BackgroundRefresh[K, V]) AddFactory(ctx context.Context, key K, factory Factory[K, V]) error {
	var zero V
	e := NewEntry(zero, c.now())
	e.Expired = true
	return c.set(ctx, key, e, factory)
}

// RefreshExpired rebuilds every expired entry that has a factory and returns
// how many were replaced. A failing factory leaves the stale entry in place;
// the failures are joined into the returned error. Entries removed or
// replaced while their factory ran are left alone.
func (c *BackgroundRefresh[K, V]) RefreshExpired(ctx context.Context) (int, error) {
	items, err := c.Entries(ctx)
	if err != nil {
		return 0, err
	}
	if err := c.pruneFactories(ctx); err != nil {
		return 0, err
	}

	refreshed := 0
	var errs []error
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return refreshed, errors.Join(append(errs, err)...)
		}
		if !c.IsExpired(it.Entry) {
			continue
		}
		factory := c.factoryFor(it.Key)
		if factory == nil {
			continue
		}

		c.stats.updates.Add(1)
		ok, err := c.rebuild(ctx, it, factory)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			refreshed++
		}
	}
	return refreshed, errors.Join(errs...)
}

// Cleanup runs RefreshExpired so a Janitor can schedule the cache.
func (c *BackgroundRefresh[K, V]) Cleanup(ctx context.Context) (int, error) {
	return c.RefreshExpired(ctx)
}

func (c *BackgroundRefresh[K, V]) set(ctx context.Context, key K, e Entry[V], factory Factory[K, V]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.updates.Add(1)
	if err := c.provider.Set(ctx, key, e); err != nil {
		return err
	}
	if factory != nil {
		c.factories[key] = factory
	} else {
		delete(c.factories, key)
	}
	return nil
}

func (c *BackgroundRefresh[K, V]) rebuild(ctx context.Context, it Item[K, V], factory Factory[K, V]) (bool, error) {
	value, err := factory(ctx, it.Key)
	if err != nil {
		return false, errors.Join(ErrFactoryFailed, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	cur, ok, err := c.provider.Get(ctx, it.Key)
	if err != nil || !ok || !cur.Created.Equal(it.Entry.Created) || !c.isExpiredAt(cur, now) {
		return false, err
	}
	return true, c.provider.Set(ctx, it.Key, NewEntry(value, now))
}

func (c *BackgroundRefresh[K, V]) factoryFor(key K) Factory[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.factories[key]; ok {
		return f
	}
	return c.factory
}

// pruneFactories drops per-key factories whose keys are no longer stored.
func (c *BackgroundRefresh[K, V]) pruneFactories(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.factories {
		_, ok, err := c.provider.Get(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			delete(c.factories, key)
		}
	}
	return nil
}
