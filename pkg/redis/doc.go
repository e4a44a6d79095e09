// Package redis provides helpers for connecting to a Redis server and using it
// as a shared cache backend.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which retries the connection using the supplied configuration.
//   - Healthcheck, for liveness and readiness checks.
//   - CacheProvider, a cache.Provider storing JSON encoded entries under a
//     key prefix so that several processes share one cache.
//
// Configuration is described by the Config struct whose fields can be
// populated from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	provider := redis.NewCacheProvider[Quote](client, redis.WithConfig(cfg), redis.WithTTL(24*time.Hour))
//	quotes := cache.NewOnDemand(loadQuote,
//	    cache.WithProvider[string, Quote](provider),
//	    cache.WithStrategy[string, Quote](cache.After[Quote](time.Minute)),
//	)
//
// # Error Handling
//
// Connection problems surface as ErrEmptyConnectionURL,
// ErrFailedToParseRedisConnString or ErrRedisNotReady. CacheProvider wraps
// client failures with ErrCacheOperation and JSON failures with
// ErrCacheEncoding; a missing key is not an error.
package redis
