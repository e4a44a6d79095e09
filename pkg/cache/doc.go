// Package cache provides generic in-process caches with pluggable expiration
// strategies, storage providers and background cleanup.
//
// Every cached value is wrapped in an Entry that records when it was created,
// when it was last read and how many times it was read. A Strategy inspects
// that bookkeeping to decide whether an entry is expired:
//
//	cache.Always[V]()             // expired immediately, refreshed on every read
//	cache.Never[V]()              // kept until removed
//	cache.After[V](time.Minute)   // expired one minute after creation
//	cache.NotUsedIn[V](time.Hour) // expired after an hour without reads
//	cache.AfterHits[V](10)        // expired after ten reads
//	cache.When[V](pred)           // expired when pred(value) is true
//	cache.NextDay[V]()            // expired at the first midnight after creation
//	cache.At[V](6, 30)            // expired at the first 06:30 after creation
//
// # Caches
//
// CheckAndSet is filled by the caller. Get reports a miss for absent or expired
// entries and the caller decides whether to Add:
//
//	c := cache.NewCheckAndSet[string, *User](
//		cache.WithStrategy[string, *User](cache.After[*User](5*time.Minute)),
//	)
//	if u, ok, err := c.Get(ctx, id); err == nil && ok {
//		return u, nil
//	}
//
// OnDemand is read-through. It calls its factory for missing keys and for
// expired entries, deduplicating concurrent calls for the same key:
//
//	rates := cache.NewOnDemand(loadRate,
//		cache.WithStrategy[string, float64](cache.NextDay[float64]()))
//	rate, err := rates.Get(ctx, "EURUSD")
//
// Both keep Statistics (requests, hits, misses, updates, evictions, cleanings).
//
// # Providers
//
// Entries live in a Provider. MemoryProvider is an unbounded map, LRUProvider
// evicts the least recently used entry once it reaches capacity, and the redis
// package offers a shared provider for string keys.
//
// # Cleanup
//
// Clean removes expired entries on demand. Cleanup strategies such as
// Expired, LeastPopular, LeastRecentlyUsed or BoundedAtFIFO pick entries to
// remove from any Store, and a Janitor runs them periodically:
//
//	j := cache.NewJanitor(cache.WithJanitorLogger(log))
//	_ = j.Register("sessions", cache.Expired(sessions), time.Minute)
//	_ = j.Register("rates", cache.BoundedAtFIFO(rates, 1000), time.Hour)
//	go j.Start(ctx)
//
// # Configuration
//
// Config carries CACHE_TTL, CACHE_CAPACITY and CACHE_JANITOR_INTERVAL. Load it
// with the config package and pass it to WithConfig and WithJanitorConfig.
package cache
