package dbutil

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sharedkit/pkg/logger"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Table is one materialised result set.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Value returns the cell at row r in the named column.
func (t Table) Value(r int, column string) (any, bool) {
	if r < 0 || r >= len(t.Rows) {
		return nil, false
	}
	for i, c := range t.Columns {
		if c == column {
			return t.Rows[r][i], true
		}
	}
	return nil, false
}

// DataSet holds every result set returned by a command, in order.
type DataSet []Table

// Utility executes commands against a database handle or an open transaction.
type Utility struct {
	db     *sql.DB
	q      querier
	logger *slog.Logger
	inTx   bool
}

// Option configures a Utility.
type Option func(*Utility)

// WithLogger sets the logger used for command diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(u *Utility) {
		if l != nil {
			u.logger = l
		}
	}
}

// New wraps an existing database handle.
func New(db *sql.DB, opts ...Option) *Utility {
	u := &Utility{
		db:     db,
		q:      db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.logger = u.logger.With(logger.Component("dbutil"))
	return u
}

// Open opens a database with the given driver and verifies the connection.
func Open(ctx context.Context, driverName, dsn string, opts ...Option) (*Utility, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Join(ErrOpenFailed, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrOpenFailed, err)
	}
	return New(db, opts...), nil
}

// DB returns the underlying database handle.
func (u *Utility) DB() *sql.DB {
	return u.db
}

// Close closes the underlying database handle.
func (u *Utility) Close() error {
	return u.db.Close()
}

// ExecuteNonQuery runs a command that produces no rows and returns the number of rows affected.
func (u *Utility) ExecuteNonQuery(ctx context.Context, query string, params *ParameterSet) (int64, error) {
	if err := params.Err(); err != nil {
		return 0, errors.Join(ErrExecuteFailed, err)
	}

	start := time.Now()
	res, err := u.q.ExecContext(ctx, query, params.Args()...)
	u.trace(ctx, "exec", query, start, err)
	if err != nil {
		return 0, errors.Join(ErrExecuteFailed, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Join(ErrExecuteFailed, err)
	}
	return n, nil
}

// ExecuteScalar returns the first column of the first row of the first result set.
// It returns ErrNoResult when the query yields no rows.
func (u *Utility) ExecuteScalar(ctx context.Context, query string, params *ParameterSet) (any, error) {
	var (
		value any
		found bool
	)
	err := u.ExecuteRows(ctx, query, params, func(rows *sql.Rows) error {
		if found {
			return nil
		}
		cols, err := rows.Columns()
		if err != nil {
			return err
		}
		dest := make([]any, len(cols))
		for i := range dest {
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return err
		}
		if len(dest) > 0 {
			value = *(dest[0].(*any))
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Join(ErrNoResult, sql.ErrNoRows)
	}
	return value, nil
}

// ExecuteReader runs a query and returns the open rows. The caller must close them.
func (u *Utility) ExecuteReader(ctx context.Context, query string, params *ParameterSet) (*sql.Rows, error) {
	if err := params.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	start := time.Now()
	rows, err := u.q.QueryContext(ctx, query, params.Args()...)
	u.trace(ctx, "query", query, start, err)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return rows, nil
}

// ExecuteRows runs a query and calls fn for each row of the first result set.
// Rows are closed before ExecuteRows returns.
func (u *Utility) ExecuteRows(ctx context.Context, query string, params *ParameterSet, fn func(*sql.Rows) error) error {
	if fn == nil {
		return ErrNilCallback
	}

	rows, err := u.ExecuteReader(ctx, query, params)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return errors.Join(ErrScanFailed, err)
		}
	}
	if err := rows.Err(); err != nil {
		return errors.Join(ErrScanFailed, err)
	}
	return nil
}

// ExecuteDataSet runs a query and loads every result set into memory.
// Byte slices are copied so the data set stays valid after the rows are closed.
func (u *Utility) ExecuteDataSet(ctx context.Context, query string, params *ParameterSet) (DataSet, error) {
	rows, err := u.ExecuteReader(ctx, query, params)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ds DataSet
	for {
		table, err := readTable(rows)
		if err != nil {
			return nil, errors.Join(ErrScanFailed, err)
		}
		ds = append(ds, table)
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanFailed, err)
	}
	return ds, nil
}

func readTable(rows *sql.Rows) (Table, error) {
	cols, err := rows.Columns()
	if err != nil {
		return Table{}, err
	}

	table := Table{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return Table{}, err
		}
		table.Rows = append(table.Rows, values)
	}
	return table, rows.Err()
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise. Calls made on a Utility that is
// already bound to a transaction reuse it.
func (u *Utility) WithTx(ctx context.Context, fn func(tx *Utility) error) error {
	if fn == nil {
		return ErrNilCallback
	}
	if u.inTx {
		return fn(u)
	}

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Join(ErrTxFailed, err)
	}

	defer func() {
		if r := recover(); r != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				u.logger.ErrorContext(ctx, "rollback after panic failed", logger.Error(rbErr))
			}
			panic(r)
		}
	}()

	scoped := &Utility{db: u.db, q: tx, logger: u.logger, inTx: true}
	if err := fn(scoped); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			u.logger.ErrorContext(ctx, "rollback failed", logger.Error(rbErr))
			return errors.Join(err, ErrTxFailed, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Join(ErrTxFailed, err)
	}
	return nil
}

func (u *Utility) trace(ctx context.Context, kind, query string, start time.Time, err error) {
	attrs := []any{
		logger.CommandKind(kind),
		logger.Query(query),
		logger.Duration(time.Since(start)),
	}
	if err != nil {
		u.logger.ErrorContext(ctx, "database command failed", append(attrs, logger.Error(err))...)
		return
	}
	u.logger.DebugContext(ctx, "database command executed", attrs...)
}
