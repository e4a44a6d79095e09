package cache

import "time"

// Strategy decides whether an entry is expired at a point in time.
type Strategy[V any] interface {
	IsExpired(entry Entry[V], now time.Time) bool
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc[V any] func(entry Entry[V], now time.Time) bool

func (f StrategyFunc[V]) IsExpired(entry Entry[V], now time.Time) bool {
	return f(entry, now)
}

// Always expires every entry, forcing a refresh on each read.
func Always[V any]() Strategy[V] {
	return StrategyFunc[V](func(Entry[V], time.Time) bool { return true })
}

// Never keeps entries until they are removed explicitly.
func Never[V any]() Strategy[V] {
	return StrategyFunc[V](func(Entry[V], time.Time) bool { return false })
}

// After expires entries once they are older than d.
func After[V any](d time.Duration) Strategy[V] {
	return StrategyFunc[V](func(e Entry[V], now time.Time) bool {
		return e.Age(now) >= d
	})
}

// NotUsedIn expires entries that have not been read for d.
func NotUsedIn[V any](d time.Duration) Strategy[V] {
	return StrategyFunc[V](func(e Entry[V], now time.Time) bool {
		return e.Idle(now) >= d
	})
}

// AfterHits expires entries once they have been read n times.
func AfterHits[V any](n int64) Strategy[V] {
	return StrategyFunc[V](func(e Entry[V], _ time.Time) bool {
		return e.Hits >= n
	})
}

// When expires entries whose value satisfies pred. A nil pred never expires.
func When[V any](pred func(V) bool) Strategy[V] {
	return StrategyFunc[V](func(e Entry[V], _ time.Time) bool {
		return pred != nil && pred(e.Value)
	})
}

// NextDay expires entries at the first midnight after they were created,
// in the location of the creation time.
func NextDay[V any]() Strategy[V] {
	return StrategyFunc[V](func(e Entry[V], now time.Time) bool {
		c := e.Created
		midnight := time.Date(c.Year(), c.Month(), c.Day()+1, 0, 0, 0, 0, c.Location())
		return !now.Before(midnight)
	})
}

// At expires entries at the first hour:minute after they were created.
func At[V any](hour, minute int) Strategy[V] {
	return StrategyFunc[V](func(e Entry[V], now time.Time) bool {
		return !now.Before(nextTimeOfDay(e.Created, hour, minute))
	})
}

// Any expires an entry when at least one of the strategies does.
func Any[V any](strategies ...Strategy[V]) Strategy[V] {
	return StrategyFunc[V](func(e Entry[V], now time.Time) bool {
		for _, s := range strategies {
			if s != nil && s.IsExpired(e, now) {
				return true
			}
		}
		return false
	})
}

func nextTimeOfDay(t time.Time, hour, minute int) time.Time {
	next := time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
