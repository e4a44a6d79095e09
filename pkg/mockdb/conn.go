package mockdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type conn struct {
	id       string
	dsn      string
	registry *Registry

	mu     sync.Mutex
	closed bool
	tx     *tx
}

var (
	_ driver.Conn               = (*conn)(nil)
	_ driver.ConnPrepareContext = (*conn)(nil)
	_ driver.ConnBeginTx        = (*conn)(nil)
	_ driver.ExecerContext      = (*conn)(nil)
	_ driver.QueryerContext     = (*conn)(nil)
	_ driver.Pinger             = (*conn)(nil)
	_ driver.NamedValueChecker  = (*conn)(nil)
	_ driver.Validator          = (*conn)(nil)
)

func (c *conn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (c *conn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	if err := c.ready(ctx); err != nil {
		return nil, err
	}
	return &stmt{conn: c, query: query}, nil
}

// Close rolls back an open transaction before closing.
func (c *conn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	open := c.tx
	c.tx = nil
	c.closed = true
	c.mu.Unlock()

	if open != nil {
		c.registry.setTxState(open.id, TxRolledBack)
	}
	c.registry.closeConnection(c.id)
	return nil
}

func (c *conn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *conn) BeginTx(ctx context.Context, _ driver.TxOptions) (driver.Tx, error) {
	if err := c.ready(ctx); err != nil {
		return nil, err
	}
	if c.registry.lookup(c.dsn).Failures().Begin {
		return nil, errors.Join(ErrBeginFailed, ErrSimulated)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tx != nil {
		return nil, ErrTxInProgress
	}

	t := &tx{id: uuid.NewString(), conn: c}
	c.tx = t
	c.registry.recordTransaction(&TransactionRecord{ID: t.id, ConnectionID: c.id, State: TxActive})
	return t, nil
}

func (c *conn) Ping(ctx context.Context) error {
	return c.ready(ctx)
}

// CheckNamedValue lets sql.Out through untouched so results can fill it.
func (c *conn) CheckNamedValue(nv *driver.NamedValue) error {
	if _, ok := nv.Value.(sql.Out); ok {
		return nil
	}
	v, err := driver.DefaultParameterConverter.ConvertValue(nv.Value)
	if err != nil {
		return err
	}
	nv.Value = v
	return nil
}

func (c *conn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	res, err := c.execute(ctx, KindExec, query, args)
	if err != nil {
		return nil, err
	}
	return result{rowsAffected: res.RowsAffected, lastInsertID: res.LastInsertID}, nil
}

func (c *conn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	res, err := c.execute(ctx, KindQuery, query, args)
	if err != nil {
		return nil, err
	}
	return &resultRows{sets: res.sets()}, nil
}

func (c *conn) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.Join(ErrConnClosed, driver.ErrBadConn)
	}
	return nil
}

// IsValid keeps closed connections out of the database/sql pool.
func (c *conn) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

func (c *conn) execute(ctx context.Context, kind CommandKind, query string, args []driver.NamedValue) (CommandResult, error) {
	if err := ctx.Err(); err != nil {
		return CommandResult{}, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return CommandResult{}, errors.Join(ErrConnClosed, driver.ErrBadConn)
	}
	var txID string
	if c.tx != nil {
		txID = c.tx.id
	}
	c.mu.Unlock()

	c.registry.recordCommand(CommandRecord{
		ConnectionID: c.id,
		TxID:         txID,
		Query:        query,
		Args:         args,
		Kind:         kind,
	})

	res, ok := c.registry.lookup(c.dsn).Next(query)
	if !ok {
		return CommandResult{}, nil
	}
	if res.Err != nil {
		return CommandResult{}, errors.Join(ErrExecuteFailed, res.Err)
	}
	if err := assignOutParams(args, res.OutParams); err != nil {
		return CommandResult{}, err
	}
	return res, nil
}

func assignOutParams(args []driver.NamedValue, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	for _, arg := range args {
		out, ok := arg.Value.(sql.Out)
		if !ok || arg.Name == "" {
			continue
		}
		v, found := lookupParam(values, arg.Name)
		if !found {
			continue
		}
		if err := assign(out.Dest, v); err != nil {
			return fmt.Errorf("%w: %s", err, arg.Name)
		}
	}
	return nil
}

func lookupParam(values map[string]any, name string) (any, bool) {
	want := paramName(name)
	for k, v := range values {
		if paramName(k) == want {
			return v, true
		}
	}
	return nil, false
}

func paramName(name string) string {
	return strings.ToLower(strings.TrimLeft(name, "@:$"))
}

func assign(dest, value any) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return ErrOutParamNotSet
	}
	elem := dv.Elem()
	if value == nil {
		elem.Set(reflect.Zero(elem.Type()))
		return nil
	}
	sv := reflect.ValueOf(value)
	switch {
	case sv.Type().AssignableTo(elem.Type()):
		elem.Set(sv)
	case sv.Type().ConvertibleTo(elem.Type()):
		elem.Set(sv.Convert(elem.Type()))
	default:
		return ErrOutParamMismatch
	}
	return nil
}

type result struct {
	rowsAffected int64
	lastInsertID int64
}

func (r result) LastInsertId() (int64, error) { return r.lastInsertID, nil }
func (r result) RowsAffected() (int64, error) { return r.rowsAffected, nil }
