package cache

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// keyedFlight de-duplicates concurrent loads of equal keys. Each key is given
// a singleflight name that stays unique for as long as a load of it is in
// flight, so keys that print alike never share a call.
type keyedFlight[K comparable] struct {
	group singleflight.Group

	mu    sync.Mutex
	names map[K]*flightName
	next  uint64
}

type flightName struct {
	name string
	refs int
}

func (f *keyedFlight[K]) do(key K, fn func() (any, error)) (any, error) {
	name := f.acquire(key)
	defer f.release(key)

	v, err, _ := f.group.Do(name, fn)
	return v, err
}

func (f *keyedFlight[K]) acquire(key K) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.names == nil {
		f.names = make(map[K]*flightName)
	}
	n, ok := f.names[key]
	if !ok {
		f.next++
		n = &flightName{name: strconv.FormatUint(f.next, 36)}
		f.names[key] = n
	}
	n.refs++
	return n.name
}

func (f *keyedFlight[K]) release(key K) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n, ok := f.names[key]
	if !ok {
		return
	}
	if n.refs--; n.refs == 0 {
		delete(f.names, key)
	}
}
