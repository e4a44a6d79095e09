package cache

import "time"

// Config is the environment-driven cache configuration, loaded with config.Load.
// A zero TTL means entries never expire; a zero Capacity means unbounded.
type Config struct {
	TTL             time.Duration `env:"CACHE_TTL" envDefault:"0s"`
	Capacity        int           `env:"CACHE_CAPACITY" envDefault:"0"`
	JanitorInterval time.Duration `env:"CACHE_JANITOR_INTERVAL" envDefault:"30s"`
}

// WithConfig applies cfg to a cache: an After strategy when TTL is set and
// an LRUProvider when Capacity is set.
func WithConfig[K comparable, V any](cfg Config) Option[K, V] {
	return func(s *store[K, V]) {
		if cfg.TTL > 0 {
			s.strategy = After[V](cfg.TTL)
		}
		if cfg.Capacity > 0 {
			s.provider = NewLRUProvider[K, V](cfg.Capacity)
		}
	}
}

// WithJanitorConfig sets the check interval from cfg.
func WithJanitorConfig(cfg Config) JanitorOption {
	return WithCheckInterval(cfg.JanitorInterval)
}
