package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sharedkit/pkg/cache"
)

var _ cache.Provider[string, any] = (*CacheProvider[any])(nil)

// CacheProvider stores cache entries in Redis as JSON under a key prefix,
// so several processes can share one cache.
type CacheProvider[V any] struct {
	db            redis.UniversalClient
	prefix        string
	scanBatchSize int64
	ttl           time.Duration
}

// CacheProviderOption configures a CacheProvider.
type CacheProviderOption func(*providerOptions)

type providerOptions struct {
	prefix        string
	scanBatchSize int64
	ttl           time.Duration
}

// WithKeyPrefix sets the namespace for stored keys.
func WithKeyPrefix(prefix string) CacheProviderOption {
	return func(o *providerOptions) {
		o.prefix = prefix
	}
}

// WithScanBatchSize sets the COUNT hint used by Range, Len and Clear.
func WithScanBatchSize(n int64) CacheProviderOption {
	return func(o *providerOptions) {
		if n > 0 {
			o.scanBatchSize = n
		}
	}
}

// WithTTL lets Redis drop entries after d regardless of the cache strategy.
// Zero means entries are kept until deleted.
func WithTTL(d time.Duration) CacheProviderOption {
	return func(o *providerOptions) {
		o.ttl = d
	}
}

// WithConfig applies the prefix and scan batch size from cfg.
func WithConfig(cfg Config) CacheProviderOption {
	return func(o *providerOptions) {
		if cfg.KeyPrefix != "" {
			o.prefix = cfg.KeyPrefix
		}
		if cfg.ScanBatchSize > 0 {
			o.scanBatchSize = cfg.ScanBatchSize
		}
	}
}

// NewCacheProvider creates a provider over client.
func NewCacheProvider[V any](client redis.UniversalClient, opts ...CacheProviderOption) *CacheProvider[V] {
	o := providerOptions{prefix: "sharedkit:cache:", scanBatchSize: 1000}
	for _, opt := range opts {
		opt(&o)
	}
	return &CacheProvider[V]{
		db:            client,
		prefix:        o.prefix,
		scanBatchSize: o.scanBatchSize,
		ttl:           o.ttl,
	}
}

// Key returns the Redis key used for a cache key.
func (p *CacheProvider[V]) Key(key string) string {
	return p.prefix + key
}

// globEscaper escapes the characters SCAN MATCH treats as pattern syntax.
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// Pattern returns the SCAN MATCH pattern covering every key of the provider.
// Glob characters in the prefix are escaped so they match literally.
func (p *CacheProvider[V]) Pattern() string {
	return globEscaper.Replace(p.prefix) + "*"
}

func (p *CacheProvider[V]) Get(ctx context.Context, key string) (cache.Entry[V], bool, error) {
	data, err := p.db.Get(ctx, p.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cache.Entry[V]{}, false, nil
	}
	if err != nil {
		return cache.Entry[V]{}, false, errors.Join(ErrCacheOperation, err)
	}

	entry, err := decodeEntry[V](data)
	if err != nil {
		return cache.Entry[V]{}, false, err
	}
	return entry, true, nil
}

func (p *CacheProvider[V]) Set(ctx context.Context, key string, entry cache.Entry[V]) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Join(ErrCacheEncoding, err)
	}
	if err := p.db.Set(ctx, p.Key(key), data, p.ttl).Err(); err != nil {
		return errors.Join(ErrCacheOperation, err)
	}
	return nil
}

func (p *CacheProvider[V]) Delete(ctx context.Context, key string) (bool, error) {
	n, err := p.db.Del(ctx, p.Key(key)).Result()
	if err != nil {
		return false, errors.Join(ErrCacheOperation, err)
	}
	return n > 0, nil
}

// Clear deletes every key under the prefix.
func (p *CacheProvider[V]) Clear(ctx context.Context) error {
	return p.scan(ctx, func(keys []string) (bool, error) {
		if err := p.db.Del(ctx, keys...).Err(); err != nil {
			return false, errors.Join(ErrCacheOperation, err)
		}
		return true, nil
	})
}

// Len counts keys under the prefix. It walks the keyspace, so it is O(N).
// Keys added or removed during the walk may or may not be counted.
func (p *CacheProvider[V]) Len(ctx context.Context) (int, error) {
	total := 0
	err := p.scan(ctx, func(keys []string) (bool, error) {
		total += len(keys)
		return true, nil
	})
	return total, err
}

// Range visits every entry under the prefix. Keys deleted between the scan
// and the read are skipped.
func (p *CacheProvider[V]) Range(ctx context.Context, fn func(key string, entry cache.Entry[V]) bool) error {
	return p.scan(ctx, func(keys []string) (bool, error) {
		values, err := p.db.MGet(ctx, keys...).Result()
		if err != nil {
			return false, errors.Join(ErrCacheOperation, err)
		}
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				continue
			}
			entry, err := decodeEntry[V]([]byte(s))
			if err != nil {
				return false, err
			}
			if !fn(keys[i][len(p.prefix):], entry) {
				return false, nil
			}
		}
		return true, nil
	})
}

// scan walks keys under the prefix in batches until fn returns false.
// SCAN may return a key more than once; fn sees each key only once.
func (p *CacheProvider[V]) scan(ctx context.Context, fn func(keys []string) (bool, error)) error {
	var cursor uint64
	pattern := p.Pattern()
	seen := make(map[string]struct{})
	for {
		batch, next, err := p.db.Scan(ctx, cursor, pattern, p.scanBatchSize).Result()
		if err != nil {
			return errors.Join(ErrCacheOperation, err)
		}
		keys := make([]string, 0, len(batch))
		for _, k := range batch {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			cont, err := fn(keys)
			if err != nil || !cont {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func decodeEntry[V any](data []byte) (cache.Entry[V], error) {
	var entry cache.Entry[V]
	if err := json.Unmarshal(data, &entry); err != nil {
		return cache.Entry[V]{}, errors.Join(ErrCacheEncoding, err)
	}
	return entry, nil
}
