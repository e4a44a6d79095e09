package cache

import (
	"container/list"
	"context"
	"sync"
)

type lruItem[K comparable, V any] struct {
	key   K
	entry Entry[V]
}

// LRUProvider is a bounded provider. When it reaches capacity the least
// recently used entry is evicted. Both Get and Set count as use.
type LRUProvider[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	eviction *list.List
	mu       sync.Mutex
	onEvict  func(key K, entry Entry[V])
}

// NewLRUProvider creates a provider holding at most capacity entries.
// The capacity must be positive, otherwise it panics.
func NewLRUProvider[K comparable, V any](capacity int) *LRUProvider[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	return &LRUProvider[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		eviction: list.New(),
	}
}

// SetEvictCallback registers fn to be called for every entry leaving the
// provider, whether by eviction, Delete or Clear.
func (p *LRUProvider[K, V]) SetEvictCallback(fn func(key K, entry Entry[V])) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onEvict = fn
}

// Capacity returns the configured maximum size.
func (p *LRUProvider[K, V]) Capacity() int {
	return p.capacity
}

func (p *LRUProvider[K, V]) Get(_ context.Context, key K) (Entry[V], bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if elem, ok := p.items[key]; ok {
		p.eviction.MoveToFront(elem)
		return elem.Value.(*lruItem[K, V]).entry, true, nil
	}
	return Entry[V]{}, false, nil
}

func (p *LRUProvider[K, V]) Set(_ context.Context, key K, entry Entry[V]) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if elem, ok := p.items[key]; ok {
		p.eviction.MoveToFront(elem)
		elem.Value.(*lruItem[K, V]).entry = entry
		return nil
	}

	p.items[key] = p.eviction.PushFront(&lruItem[K, V]{key: key, entry: entry})
	if p.eviction.Len() > p.capacity {
		if oldest := p.eviction.Back(); oldest != nil {
			p.removeElement(oldest)
		}
	}
	return nil
}

func (p *LRUProvider[K, V]) Delete(_ context.Context, key K) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if elem, ok := p.items[key]; ok {
		p.removeElement(elem)
		return true, nil
	}
	return false, nil
}

func (p *LRUProvider[K, V]) Clear(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.onEvict != nil {
		for _, elem := range p.items {
			it := elem.Value.(*lruItem[K, V])
			p.onEvict(it.key, it.entry)
		}
	}
	p.items = make(map[K]*list.Element)
	p.eviction.Init()
	return nil
}

func (p *LRUProvider[K, V]) Len(context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eviction.Len(), nil
}

// Range visits entries from most to least recently used without changing their order.
func (p *LRUProvider[K, V]) Range(ctx context.Context, fn func(key K, entry Entry[V]) bool) error {
	p.mu.Lock()
	snapshot := make([]lruItem[K, V], 0, p.eviction.Len())
	for elem := p.eviction.Front(); elem != nil; elem = elem.Next() {
		snapshot = append(snapshot, *elem.Value.(*lruItem[K, V]))
	}
	p.mu.Unlock()

	for _, it := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !fn(it.key, it.entry) {
			return nil
		}
	}
	return nil
}

// Must be called with lock held.
func (p *LRUProvider[K, V]) removeElement(elem *list.Element) {
	p.eviction.Remove(elem)
	it := elem.Value.(*lruItem[K, V])
	delete(p.items, it.key)

	if p.onEvict != nil {
		p.onEvict(it.key, it.entry)
	}
}
