package cache

import "sync/atomic"

// Statistics counts cache activity. All counters are safe for concurrent use.
type Statistics struct {
	requests  atomic.Int64
	hits      atomic.Int64
	misses    atomic.Int64
	updates   atomic.Int64
	evictions atomic.Int64
	cleanings atomic.Int64
}

// Stats is a point-in-time copy of Statistics.
type Stats struct {
	Requests  int64 `json:"requests"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Updates   int64 `json:"updates"`
	Evictions int64 `json:"evictions"`
	Cleanings int64 `json:"cleanings"`
}

// Snapshot returns the current counter values.
func (s *Statistics) Snapshot() Stats {
	return Stats{
		Requests:  s.requests.Load(),
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Updates:   s.updates.Load(),
		Evictions: s.evictions.Load(),
		Cleanings: s.cleanings.Load(),
	}
}

// Reset zeroes every counter.
func (s *Statistics) Reset() {
	s.requests.Store(0)
	s.hits.Store(0)
	s.misses.Store(0)
	s.updates.Store(0)
	s.evictions.Store(0)
	s.cleanings.Store(0)
}

// HitRatio is hits over requests, or zero before the first request.
func (s Stats) HitRatio() float64 {
	if s.Requests == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Requests)
}
