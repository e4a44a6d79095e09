package cache

import "time"

// Entry wraps a cached value with the bookkeeping that expiration strategies
// and cleanups inspect.
type Entry[V any] struct {
	Value       V         `json:"value"`
	Created     time.Time `json:"created"`
	LastTouched time.Time `json:"last_touched"`
	Hits        int64     `json:"hits"`
	// Expired is set by an explicit Expire call and overrides the strategy.
	Expired bool `json:"expired,omitempty"`
}

// NewEntry creates an entry created and touched at now.
func NewEntry[V any](value V, now time.Time) Entry[V] {
	return Entry[V]{Value: value, Created: now, LastTouched: now}
}

// Age is the time elapsed since the entry was created.
func (e Entry[V]) Age(now time.Time) time.Duration {
	return now.Sub(e.Created)
}

// Idle is the time elapsed since the entry was last read.
func (e Entry[V]) Idle(now time.Time) time.Duration {
	return now.Sub(e.LastTouched)
}

func (e Entry[V]) touch(now time.Time) Entry[V] {
	e.LastTouched = now
	e.Hits++
	return e
}
