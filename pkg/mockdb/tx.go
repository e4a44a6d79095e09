package mockdb

import "errors"

type tx struct {
	id   string
	conn *conn
}

// Commit detaches the transaction from its connection even when the commit
// is configured to fail; the failed transaction is recorded as TxFailed.
func (t *tx) Commit() error {
	return t.finish(TxCommitted, t.conn.registry.lookup(t.conn.dsn).Failures().Commit, ErrCommitFailed)
}

func (t *tx) Rollback() error {
	return t.finish(TxRolledBack, t.conn.registry.lookup(t.conn.dsn).Failures().Rollback, ErrRollbackFailed)
}

func (t *tx) finish(state TxState, fail bool, failErr error) error {
	t.conn.mu.Lock()
	if t.conn.tx == t {
		t.conn.tx = nil
	}
	t.conn.mu.Unlock()

	if fail {
		t.conn.registry.setTxState(t.id, TxFailed)
		return errors.Join(failErr, ErrSimulated)
	}
	t.conn.registry.setTxState(t.id, state)
	return nil
}
