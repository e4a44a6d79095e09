package cache

import (
	"context"
	"sync"
)

// CheckAndSet is a cache that callers fill themselves: a Get miss or an
// expired entry reports not found, and the caller decides whether to Add.
type CheckAndSet[K comparable, V any] struct {
	*store[K, V]
	mu sync.Mutex
}

var _ Store[string, any] = (*CheckAndSet[string, any])(nil)

// NewCheckAndSet creates a cache. Without options entries live in memory and never expire.
func NewCheckAndSet[K comparable, V any](opts ...Option[K, V]) *CheckAndSet[K, V] {
	return &CheckAndSet[K, V]{store: newStore(opts)}
}

// Get returns the value for key if it is present and not expired.
// A successful read updates the entry's hit count and last touched time.
func (c *CheckAndSet[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	var zero V
	c.stats.requests.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok, err := c.provider.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}

	now := c.now()
	if !ok || c.isExpiredAt(e, now) {
		c.stats.misses.Add(1)
		return zero, false, nil
	}

	c.stats.hits.Add(1)
	e = e.touch(now)
	if err := c.provider.Set(ctx, key, e); err != nil {
		return zero, false, err
	}
	return e.Value, true, nil
}

// IsValid reports whether key holds an unexpired entry without counting a request.
func (c *CheckAndSet[K, V]) IsValid(ctx context.Context, key K) (bool, error) {
	e, ok, err := c.provider.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	return !c.IsExpired(e), nil
}

// Add stores value under key, replacing any previous entry.
func (c *CheckAndSet[K, V]) Add(ctx context.Context, key K, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.updates.Add(1)
	return c.provider.Set(ctx, key, NewEntry(value, c.now()))
}

// AddAll stores every pair in values.
func (c *CheckAndSet[K, V]) AddAll(ctx context.Context, values map[K]V) error {
	for k, v := range values {
		if err := c.Add(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}
