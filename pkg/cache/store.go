package cache

import (
	"context"
	"time"
)

// Item pairs a key with its entry.
type Item[K comparable, V any] struct {
	Key   K
	Entry Entry[V]
}

// Store is the view of a cache that cleanups work against.
type Store[K comparable, V any] interface {
	Entries(ctx context.Context) ([]Item[K, V], error)
	Remove(ctx context.Context, key K) (bool, error)
	IsExpired(entry Entry[V]) bool
	Now() time.Time
}

// Option configures CheckAndSet and OnDemand caches.
type Option[K comparable, V any] func(*store[K, V])

// WithProvider replaces the default MemoryProvider.
func WithProvider[K comparable, V any](p Provider[K, V]) Option[K, V] {
	return func(s *store[K, V]) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithStrategy sets the expiration strategy. The default is Never.
func WithStrategy[K comparable, V any](strategy Strategy[V]) Option[K, V] {
	return func(s *store[K, V]) {
		if strategy != nil {
			s.strategy = strategy
		}
	}
}

// WithClock overrides time.Now, mostly for tests.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(s *store[K, V]) {
		if now != nil {
			s.now = now
		}
	}
}

// store holds what both cache flavors share.
type store[K comparable, V any] struct {
	provider Provider[K, V]
	strategy Strategy[V]
	stats    Statistics
	now      func() time.Time
}

func newStore[K comparable, V any](opts []Option[K, V]) *store[K, V] {
	s := &store[K, V]{
		provider: NewMemoryProvider[K, V](),
		strategy: Never[V](),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the cache clock's current time.
func (s *store[K, V]) Now() time.Time {
	return s.now()
}

// IsExpired reports whether entry was expired explicitly or by the strategy.
func (s *store[K, V]) IsExpired(entry Entry[V]) bool {
	return s.isExpiredAt(entry, s.now())
}

func (s *store[K, V]) isExpiredAt(entry Entry[V], now time.Time) bool {
	return entry.Expired || s.strategy.IsExpired(entry, now)
}

// Statistics returns a snapshot of the cache counters.
func (s *store[K, V]) Statistics() Stats {
	return s.stats.Snapshot()
}

// Len returns the number of stored entries, expired ones included.
func (s *store[K, V]) Len(ctx context.Context) (int, error) {
	return s.provider.Len(ctx)
}

// Entries returns a snapshot of every stored entry.
func (s *store[K, V]) Entries(ctx context.Context) ([]Item[K, V], error) {
	var items []Item[K, V]
	err := s.provider.Range(ctx, func(k K, e Entry[V]) bool {
		items = append(items, Item[K, V]{Key: k, Entry: e})
		return true
	})
	return items, err
}

// Remove deletes key and counts an eviction.
func (s *store[K, V]) Remove(ctx context.Context, key K) (bool, error) {
	s.stats.evictions.Add(1)
	return s.provider.Delete(ctx, key)
}

// Clear drops every entry.
func (s *store[K, V]) Clear(ctx context.Context) error {
	s.stats.cleanings.Add(1)
	return s.provider.Clear(ctx)
}

// Clean removes expired entries and returns how many were removed.
func (s *store[K, V]) Clean(ctx context.Context) (int, error) {
	s.stats.cleanings.Add(1)

	now := s.now()
	var expired []K
	err := s.provider.Range(ctx, func(k K, e Entry[V]) bool {
		if s.isExpiredAt(e, now) {
			expired = append(expired, k)
		}
		return true
	})
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, k := range expired {
		ok, err := s.provider.Delete(ctx, k)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// Expire marks key as expired. The entry stays stored until cleaned.
func (s *store[K, V]) Expire(ctx context.Context, key K) (bool, error) {
	e, ok, err := s.provider.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	e.Expired = true
	return true, s.provider.Set(ctx, key, e)
}
