package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds one parsed configuration. The once guards parsing so concurrent
// first calls for the same key parse the environment a single time.
type entry struct {
	once  sync.Once
	value any
	err   error
}

type configCache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func (c *configCache) get(key string) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

// forget drops e unless another caller has already replaced it.
func (c *configCache) forget(key string, e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries[key] == e {
		delete(c.entries, key)
	}
}

func (c *configCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
}

var (
	globalCache = &configCache{entries: make(map[string]*entry)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using its `env` struct tags.
// The default .env file is read on first use when present. Each configuration
// type is parsed once; later calls return the cached copy. A failed parse is
// not cached, so a later call can succeed once the environment is fixed.
//
// Example:
//
//	type RedisConfig struct {
//		URL       string `env:"REDIS_URL,required"`
//		KeyPrefix string `env:"REDIS_CACHE_PREFIX" envDefault:"sharedkit:cache:"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	return load(v, "")
}

// LoadPrefixed is like Load but reads every variable with prefix prepended,
// so the same struct can describe several instances:
//
//	var primary, replica pg.Config
//	config.LoadPrefixed(&primary, "PRIMARY_")
//	config.LoadPrefixed(&replica, "REPLICA_")
//
// Results are cached per type and prefix.
func LoadPrefixed[T any](v *T, prefix string) error {
	return load(v, prefix)
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	var dbConfig pg.Config
//	config.MustLoad(&dbConfig)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReload discards the cached copy for T and parses the environment again.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	key := cacheKey[T]("")
	globalCache.forget(key, globalCache.get(key))
	return Load(v)
}

// LoadEnv reads the given .env files into the process environment. Variables
// that are already set are kept, and earlier files take precedence over later
// ones. The configuration cache is cleared so following Load calls see the
// new values.
func LoadEnv(paths ...string) error {
	// The explicit files replace the implicit default .env lookup.
	defaultEnvLoaded.Do(func() {})

	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	ResetCache()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.reset()
}

func load[T any](v *T, prefix string) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := cacheKey[T](prefix)
	e := globalCache.get(key)

	e.once.Do(func() {
		parsed := *v
		if err := env.ParseWithOptions(&parsed, env.Options{Prefix: prefix}); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		globalCache.forget(key, e)
		return e.err
	}

	cached, ok := e.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cached
	return nil
}

func cacheKey[T any](prefix string) string {
	return prefix + "|" + getTypeName[T]()
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
