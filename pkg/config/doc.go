// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is read on first use,
//     or explicit files are read with LoadEnv.
//   - Struct fields are populated from `env` tags, with `envDefault` values
//     and `required` checks.
//   - Each configuration type is parsed once and cached for the lifetime of
//     the process. LoadPrefixed caches per prefix so one struct can describe
//     several instances.
//
// # Usage
//
// Every package that needs settings exposes a Config struct with env tags,
// for example pg.Config, redis.Config, encryption.Config and logger.Config:
//
//	import "github.com/dmitrymomot/sharedkit/pkg/config"
//
//	func main() {
//	    if err := config.LoadEnv("./deploy/.env"); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var db pg.Config
//	    if err := config.Load(&db); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//
//	    var replica pg.Config
//	    config.LoadPrefixed(&replica, "REPLICA_")
//	}
//
// # Error Handling
//
//   - `ErrParsingConfig` wraps the env parser error, such as a missing required value.
//   - `ErrLoadingEnvFile` wraps a failure to read an explicit .env file.
//   - `ErrNilPointer` is returned for a nil target.
//
// A failed parse is not cached, so a retry after fixing the environment works.
//
// # Testing Helpers
//
// ResetCache clears every cached configuration and ForceReload re-parses a
// single type after the process environment changes.
package config
