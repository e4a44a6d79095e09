package cache

import (
	"cmp"
	"context"
	"slices"
	"time"
)

// Cleanup removes entries from a cache and reports how many it removed.
type Cleanup interface {
	Cleanup(ctx context.Context) (int, error)
}

// CleanupFunc adapts a function to Cleanup.
type CleanupFunc func(ctx context.Context) (int, error)

func (f CleanupFunc) Cleanup(ctx context.Context) (int, error) {
	return f(ctx)
}

// Nothing removes no entries. It stands in where a cleanup is required but
// the cache should keep everything.
func Nothing() CleanupFunc {
	return func(context.Context) (int, error) { return 0, nil }
}

// Expired removes entries the store considers expired.
func Expired[K comparable, V any](s Store[K, V]) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		return slices.DeleteFunc(items, func(it Item[K, V]) bool {
			return !s.IsExpired(it.Entry)
		})
	})
}

// LeastPopular removes the n entries with the fewest hits.
func LeastPopular[K comparable, V any](s Store[K, V], n int) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		sortBy(items, byHits, false)
		return take(items, n)
	})
}

// AllButMostPopular keeps the n entries with the most hits and removes the rest.
func AllButMostPopular[K comparable, V any](s Store[K, V], n int) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		sortBy(items, byHits, true)
		return skip(items, n)
	})
}

// LeastRecentlyUsed removes the n entries read longest ago.
func LeastRecentlyUsed[K comparable, V any](s Store[K, V], n int) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		sortBy(items, byLastTouched, false)
		return take(items, n)
	})
}

// AllButMostRecentlyUsed keeps the n most recently read entries and removes the rest.
func AllButMostRecentlyUsed[K comparable, V any](s Store[K, V], n int) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		sortBy(items, byLastTouched, true)
		return skip(items, n)
	})
}

// BoundedAtFIFO trims the cache to n entries, removing the oldest first.
func BoundedAtFIFO[K comparable, V any](s Store[K, V], n int) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		sortBy(items, byCreated, true)
		return skip(items, n)
	})
}

// BoundedAtLIFO trims the cache to n entries, removing the newest first.
func BoundedAtLIFO[K comparable, V any](s Store[K, V], n int) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		sortBy(items, byCreated, false)
		return skip(items, n)
	})
}

// OlderThan removes entries created more than d ago.
func OlderThan[K comparable, V any](s Store[K, V], d time.Duration) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		now := s.Now()
		return slices.DeleteFunc(items, func(it Item[K, V]) bool {
			return it.Entry.Age(now) <= d
		})
	})
}

// YoungerThan removes entries created less than d ago.
func YoungerThan[K comparable, V any](s Store[K, V], d time.Duration) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		now := s.Now()
		return slices.DeleteFunc(items, func(it Item[K, V]) bool {
			return it.Entry.Age(now) >= d
		})
	})
}

// IdleFor removes entries not read for more than d.
func IdleFor[K comparable, V any](s Store[K, V], d time.Duration) CleanupFunc {
	return selectAndRemove(s, func(items []Item[K, V]) []Item[K, V] {
		now := s.Now()
		return slices.DeleteFunc(items, func(it Item[K, V]) bool {
			return it.Entry.Idle(now) <= d
		})
	})
}

func selectAndRemove[K comparable, V any](s Store[K, V], pick func([]Item[K, V]) []Item[K, V]) CleanupFunc {
	return func(ctx context.Context) (int, error) {
		items, err := s.Entries(ctx)
		if err != nil {
			return 0, err
		}

		removed := 0
		for _, it := range pick(items) {
			ok, err := s.Remove(ctx, it.Key)
			if err != nil {
				return removed, err
			}
			if ok {
				removed++
			}
		}
		return removed, nil
	}
}

type field int

const (
	byHits field = iota
	byLastTouched
	byCreated
)

// sortBy orders items by f, descending when desc is set. Ties keep snapshot order.
func sortBy[K comparable, V any](items []Item[K, V], f field, desc bool) {
	slices.SortStableFunc(items, func(a, b Item[K, V]) int {
		var c int
		switch f {
		case byHits:
			c = cmp.Compare(a.Entry.Hits, b.Entry.Hits)
		case byLastTouched:
			c = a.Entry.LastTouched.Compare(b.Entry.LastTouched)
		case byCreated:
			c = a.Entry.Created.Compare(b.Entry.Created)
		}
		if desc {
			return -c
		}
		return c
	})
}

func take[T any](items []T, n int) []T {
	n = max(n, 0)
	if n >= len(items) {
		return items
	}
	return items[:n]
}

func skip[T any](items []T, n int) []T {
	n = max(n, 0)
	if n >= len(items) {
		return nil
	}
	return items[n:]
}
