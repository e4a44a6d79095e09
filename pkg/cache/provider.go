package cache

import (
	"context"
	"sync"
)

// Provider is the storage behind a cache. Implementations must be safe for
// concurrent use. Range visits a snapshot, so fn may modify the provider.
type Provider[K comparable, V any] interface {
	Get(ctx context.Context, key K) (Entry[V], bool, error)
	Set(ctx context.Context, key K, entry Entry[V]) error
	Delete(ctx context.Context, key K) (bool, error)
	Clear(ctx context.Context) error
	Len(ctx context.Context) (int, error)
	Range(ctx context.Context, fn func(key K, entry Entry[V]) bool) error
}

var (
	_ Provider[string, any] = (*MemoryProvider[string, any])(nil)
	_ Provider[string, any] = (*LRUProvider[string, any])(nil)
)

// MemoryProvider is an unbounded map guarded by a mutex.
type MemoryProvider[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]Entry[V]
}

// NewMemoryProvider creates an empty provider.
func NewMemoryProvider[K comparable, V any]() *MemoryProvider[K, V] {
	return &MemoryProvider[K, V]{items: make(map[K]Entry[V])}
}

func (p *MemoryProvider[K, V]) Get(_ context.Context, key K) (Entry[V], bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.items[key]
	return e, ok, nil
}

func (p *MemoryProvider[K, V]) Set(_ context.Context, key K, entry Entry[V]) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items[key] = entry
	return nil
}

func (p *MemoryProvider[K, V]) Delete(_ context.Context, key K) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.items[key]
	delete(p.items, key)
	return ok, nil
}

func (p *MemoryProvider[K, V]) Clear(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.items)
	return nil
}

func (p *MemoryProvider[K, V]) Len(context.Context) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items), nil
}

func (p *MemoryProvider[K, V]) Range(ctx context.Context, fn func(key K, entry Entry[V]) bool) error {
	p.mu.RLock()
	snapshot := make([]Item[K, V], 0, len(p.items))
	for k, e := range p.items {
		snapshot = append(snapshot, Item[K, V]{Key: k, Entry: e})
	}
	p.mu.RUnlock()

	for _, it := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !fn(it.Key, it.Entry) {
			return nil
		}
	}
	return nil
}
