package mockdb

import (
	"database/sql"
	"database/sql/driver"
	"strings"
	"sync"
	"time"
)

const (
	// DriverName is the name the driver is registered under with database/sql.
	DriverName = "mockdb"
	// DefaultConnection keys results served to unknown connection strings.
	DefaultConnection = "DefaultConnection"
	// DefaultCommand keys results served to commands without a queue of their own.
	DefaultCommand = "DefaultCommand"
)

// TxState is the outcome of a mock transaction.
type TxState int

const (
	TxActive TxState = iota
	TxCommitted
	TxRolledBack
	TxFailed
)

func (s TxState) String() string {
	switch s {
	case TxActive:
		return "active"
	case TxCommitted:
		return "committed"
	case TxRolledBack:
		return "rolled back"
	case TxFailed:
		return "failed"
	}
	return "unknown"
}

// ConnectionRecord describes a connection opened through the driver.
type ConnectionRecord struct {
	ID               string
	ConnectionString string
	OpenedAt         time.Time
	Closed           bool
}

// CommandRecord describes an executed command.
type CommandRecord struct {
	ConnectionID string
	TxID         string
	Query        string
	Args         []driver.NamedValue
	Kind         CommandKind
}

// CommandKind tells exec calls from query calls.
type CommandKind string

const (
	KindExec  CommandKind = "exec"
	KindQuery CommandKind = "query"
)

// TransactionRecord describes a transaction started through the driver.
type TransactionRecord struct {
	ID           string
	ConnectionID string
	State        TxState
}

// Registry maps connection strings to canned results and records history.
// Connection strings are matched case-insensitively.
type Registry struct {
	mu           sync.Mutex
	results      map[string]*ConnectionResults
	connections  []*ConnectionRecord
	commands     []CommandRecord
	transactions []*TransactionRecord
}

// Default is the registry used by the driver registered as DriverName.
var Default = NewRegistry()

func init() {
	sql.Register(DriverName, &Driver{registry: Default})
}

// NewRegistry creates an isolated registry. Use OpenDB or Connector to reach it.
func NewRegistry() *Registry {
	return &Registry{results: make(map[string]*ConnectionResults)}
}

// Results returns the results for connectionString, creating them when missing.
// An empty connection string addresses DefaultConnection.
func (r *Registry) Results(connectionString string) *ConnectionResults {
	key := connectionKey(connectionString)

	r.mu.Lock()
	defer r.mu.Unlock()

	cr, ok := r.results[key]
	if !ok {
		cr = NewConnectionResults()
		r.results[key] = cr
	}
	return cr
}

// DefaultResults returns the results served to unknown connection strings.
func (r *Registry) DefaultResults() *ConnectionResults {
	return r.Results(DefaultConnection)
}

// SetResults replaces the results for connectionString.
func (r *Registry) SetResults(connectionString string, results *ConnectionResults) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[connectionKey(connectionString)] = results
}

// ResetResults drops every configured result and the recorded history.
func (r *Registry) ResetResults() {
	r.mu.Lock()
	r.results = make(map[string]*ConnectionResults)
	r.mu.Unlock()

	r.ResetHistory()
}

// ResetHistory clears recorded connections, commands and transactions.
func (r *Registry) ResetHistory() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections = nil
	r.commands = nil
	r.transactions = nil
}

// Connections returns a snapshot of the connections opened so far.
func (r *Registry) Connections() []ConnectionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ConnectionRecord, 0, len(r.connections))
	for _, c := range r.connections {
		out = append(out, *c)
	}
	return out
}

// Commands returns a snapshot of the commands executed so far.
func (r *Registry) Commands() []CommandRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CommandRecord, len(r.commands))
	copy(out, r.commands)
	return out
}

// Transactions returns a snapshot of the transactions started so far.
func (r *Registry) Transactions() []TransactionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TransactionRecord, 0, len(r.transactions))
	for _, t := range r.transactions {
		out = append(out, *t)
	}
	return out
}

// Connector returns a driver.Connector bound to this registry.
func (r *Registry) Connector(connectionString string) driver.Connector {
	return &connector{registry: r, dsn: connectionString}
}

// OpenDB opens a *sql.DB backed by this registry.
func (r *Registry) OpenDB(connectionString string) *sql.DB {
	return sql.OpenDB(r.Connector(connectionString))
}

// lookup never creates results for unknown connection strings; those fall
// back to DefaultConnection.
func (r *Registry) lookup(connectionString string) *ConnectionResults {
	r.mu.Lock()
	cr, ok := r.results[connectionKey(connectionString)]
	r.mu.Unlock()
	if ok {
		return cr
	}
	return r.DefaultResults()
}

func (r *Registry) recordConnection(rec *ConnectionRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections = append(r.connections, rec)
}

func (r *Registry) closeConnection(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.connections {
		if c.ID == id {
			c.Closed = true
		}
	}
}

func (r *Registry) recordCommand(rec CommandRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, rec)
}

func (r *Registry) recordTransaction(rec *TransactionRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, rec)
}

func (r *Registry) setTxState(id string, state TxState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transactions {
		if t.ID == id {
			t.State = state
		}
	}
}

func connectionKey(connectionString string) string {
	if connectionString == "" {
		connectionString = DefaultConnection
	}
	return strings.ToLower(connectionString)
}
