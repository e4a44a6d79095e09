package cache

import (
	"context"
	"errors"
	"sync"
)

// Factory produces the value for a key on demand.
type Factory[K comparable, V any] func(ctx context.Context, key K) (V, error)

// OnDemand is a read-through cache: missing or expired entries are rebuilt
// with the factory on Get. Concurrent rebuilds of one key share a single
// factory call.
type OnDemand[K comparable, V any] struct {
	*store[K, V]
	factory Factory[K, V]
	flight  keyedFlight[K]

	// mu serializes writes to the provider so a touched entry never
	// overwrites a newer one.
	mu sync.Mutex
}

var _ Store[string, any] = (*OnDemand[string, any])(nil)

// NewOnDemand creates a read-through cache. A nil factory yields zero values.
func NewOnDemand[K comparable, V any](factory Factory[K, V], opts ...Option[K, V]) *OnDemand[K, V] {
	if factory == nil {
		factory = func(context.Context, K) (V, error) {
			var zero V
			return zero, nil
		}
	}
	return &OnDemand[K, V]{store: newStore(opts), factory: factory}
}

// Get returns the cached value for key, building it when missing and
// rebuilding it when expired.
func (c *OnDemand[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	c.stats.requests.Add(1)

	e, ok, fresh, err := c.touch(ctx, key)
	if err != nil {
		return zero, err
	}
	if fresh {
		return e.Value, nil
	}

	if !ok {
		c.stats.misses.Add(1)
		if e, err = c.refresh(ctx, key); err != nil {
			return zero, err
		}
		if !c.IsExpired(e) {
			return e.Value, nil
		}
	}

	c.stats.updates.Add(1)
	if e, err = c.refresh(ctx, key); err != nil {
		return zero, err
	}
	return e.Value, nil
}

// Add stores value under key, replacing any previous entry.
func (c *OnDemand[K, V]) Add(ctx context.Context, key K, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.updates.Add(1)
	return c.provider.Set(ctx, key, NewEntry(value, c.now()))
}

// Refresh rebuilds key with the factory regardless of its state.
func (c *OnDemand[K, V]) Refresh(ctx context.Context, key K) (V, error) {
	c.stats.updates.Add(1)
	e, err := c.refresh(ctx, key)
	return e.Value, err
}

// touch records a hit on a stored entry and reports whether it is still fresh.
func (c *OnDemand[K, V]) touch(ctx context.Context, key K) (e Entry[V], ok, fresh bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok, err = c.provider.Get(ctx, key)
	if err != nil || !ok {
		return e, ok, false, err
	}
	c.stats.hits.Add(1)

	now := c.now()
	if c.isExpiredAt(e, now) {
		return e, true, false, nil
	}
	e = e.touch(now)
	if err = c.provider.Set(ctx, key, e); err != nil {
		return e, true, false, err
	}
	return e, true, true, nil
}

func (c *OnDemand[K, V]) refresh(ctx context.Context, key K) (Entry[V], error) {
	v, err := c.flight.do(key, func() (any, error) {
		value, err := c.factory(ctx, key)
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
		return Entry[V]{}, err
	}
	return v.(Entry[V]), nil
}
