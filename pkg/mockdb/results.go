package mockdb

import (
	"sync"
)

// ResultSet is one tabular result returned by a query.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// NewResultSet creates an empty result set with the given column names.
func NewResultSet(columns ...string) *ResultSet {
	return &ResultSet{Columns: columns}
}

// AddRow appends a row. Missing trailing values read as NULL.
func (rs *ResultSet) AddRow(values ...any) *ResultSet {
	rs.Rows = append(rs.Rows, values)
	return rs
}

// CommandResult is the canned outcome of a single command execution.
type CommandResult struct {
	// ResultSets are returned in order by queries; NextResultSet walks them.
	ResultSets []*ResultSet
	// RowsAffected and LastInsertID are reported by exec calls.
	RowsAffected int64
	LastInsertID int64
	// Scalar, when ResultSets is empty, is returned as a single row with a single "value" column.
	Scalar any
	// Err makes the execution fail with ErrExecuteFailed joined with Err.
	Err error
	// OutParams assigns values to sql.Out arguments by parameter name.
	OutParams map[string]any
}

// Rows builds a result returning the given result sets.
func Rows(sets ...*ResultSet) CommandResult {
	return CommandResult{ResultSets: sets}
}

// Scalar builds a result returning a single value.
func Scalar(v any) CommandResult {
	return CommandResult{Scalar: v}
}

// Affected builds an exec result.
func Affected(rowsAffected, lastInsertID int64) CommandResult {
	return CommandResult{RowsAffected: rowsAffected, LastInsertID: lastInsertID}
}

// Failure builds a result that fails on execution. A nil err reports ErrSimulated.
func Failure(err error) CommandResult {
	if err == nil {
		err = ErrSimulated
	}
	return CommandResult{Err: err}
}

// WithOut returns a copy of r that also assigns the named output parameter.
func (r CommandResult) WithOut(name string, value any) CommandResult {
	out := make(map[string]any, len(r.OutParams)+1)
	for k, v := range r.OutParams {
		out[k] = v
	}
	out[name] = value
	r.OutParams = out
	return r
}

func (r CommandResult) sets() []*ResultSet {
	if len(r.ResultSets) > 0 {
		return r.ResultSets
	}
	if r.Scalar != nil {
		return []*ResultSet{NewResultSet("value").AddRow(r.Scalar)}
	}
	return nil
}

// Failures switches simulated connection and transaction failures on.
type Failures struct {
	Open     bool
	Begin    bool
	Commit   bool
	Rollback bool
}

// ConnectionResults holds FIFO queues of canned results keyed by command text.
// Commands without their own queue fall back to the DefaultCommand queue.
type ConnectionResults struct {
	mu       sync.Mutex
	queues   map[string][]CommandResult
	failures Failures
}

// NewConnectionResults creates an empty result set container.
func NewConnectionResults() *ConnectionResults {
	return &ConnectionResults{queues: make(map[string][]CommandResult)}
}

// Add enqueues results for command. An empty command targets the default queue.
func (cr *ConnectionResults) Add(command string, results ...CommandResult) *ConnectionResults {
	key := commandKey(command)
	cr.mu.Lock()
	defer cr.mu.Unlock()
	cr.queues[key] = append(cr.queues[key], results...)
	return cr
}

// AddDefault enqueues results served to commands without a queue of their own.
func (cr *ConnectionResults) AddDefault(results ...CommandResult) *ConnectionResults {
	return cr.Add(DefaultCommand, results...)
}

// Next dequeues the result for command. It reports false when no result is queued.
func (cr *ConnectionResults) Next(command string) (CommandResult, bool) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	key := commandKey(command)
	if _, ok := cr.queues[key]; !ok {
		key = DefaultCommand
	}
	queue := cr.queues[key]
	if len(queue) == 0 {
		return CommandResult{}, false
	}
	cr.queues[key] = queue[1:]
	return queue[0], true
}

// Pending returns the number of results still queued under command.
func (cr *ConnectionResults) Pending(command string) int {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	return len(cr.queues[commandKey(command)])
}

// SetFailures replaces the simulated failure switches.
func (cr *ConnectionResults) SetFailures(f Failures) *ConnectionResults {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	cr.failures = f
	return cr
}

// Failures returns the current simulated failure switches.
func (cr *ConnectionResults) Failures() Failures {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	return cr.failures
}

// Reset drops every queued result and clears failure switches.
func (cr *ConnectionResults) Reset() {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	cr.queues = make(map[string][]CommandResult)
	cr.failures = Failures{}
}

func commandKey(command string) string {
	if command == "" {
		return DefaultCommand
	}
	return command
}
