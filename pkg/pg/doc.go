// Package pg opens PostgreSQL databases through the pgx/v5 stdlib driver and
// applies goose migrations. It returns a plain *sql.DB so the handle can be
// passed to pkg/dbutil and anything else written against database/sql.
//
// # Usage
//
//	var cfg pg.Config
//	if err := env.Parse(&cfg); err != nil {
//		panic(err)
//	}
//
//	db, err := pg.Open(ctx, cfg)
//	if err != nil {
//		panic(err)
//	}
//	defer db.Close()
//
//	//go:embed migrations/*.sql
//	var migrations embed.FS
//
//	if err := pg.Migrate(ctx, db, cfg, slog.Default(), migrations); err != nil {
//		panic(err)
//	}
//
//	util := dbutil.New(db)
//
// Open retries failed pings with a linear backoff and gives up early when the
// context is cancelled. Healthcheck returns a func(context.Context) error for
// readiness checks.
//
// # Error Handling
//
// Helpers such as [IsDuplicateKeyError] or [IsForeignKeyViolationError]
// unwrap *pgconn.PgError values so callers can branch on SQLSTATE codes
// without importing pgx.
package pg
