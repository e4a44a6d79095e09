// Package mockdb implements a database/sql driver that serves canned results
// instead of talking to a database server. It lets code written against
// database/sql be unit tested without a running database.
//
// Results are organised in a Registry: connection string -> command text ->
// FIFO queue of CommandResult values. Each execution dequeues the next result
// for its command. Commands without a queue of their own read from the
// DefaultCommand queue, and unknown connection strings read from
// DefaultConnection. An empty queue behaves like a command that returns no rows
// and affects nothing.
//
// # Usage
//
//	reg := mockdb.NewRegistry()
//	reg.Results("orders").
//	    Add("SELECT id, total FROM orders", mockdb.Rows(
//	        mockdb.NewResultSet("id", "total").AddRow(1, 9.5).AddRow(2, 12.0),
//	    )).
//	    Add("DELETE FROM orders WHERE id = $1", mockdb.Affected(1, 0))
//
//	db := reg.OpenDB("orders")
//	defer db.Close()
//
// The driver is also registered with database/sql as "mockdb" and backed by
// the package level Default registry:
//
//	mockdb.Default.Results("dsn").AddDefault(mockdb.Scalar(42))
//	db, _ := sql.Open(mockdb.DriverName, "dsn")
//
// # Failures
//
// A CommandResult with Err fails the execution with ErrExecuteFailed.
// ConnectionResults.SetFailures simulates connections that refuse to open and
// transactions that refuse to begin, commit or roll back.
//
// # History
//
// The registry records opened connections, executed commands with their
// arguments and transaction outcomes. ResetHistory clears them and
// ResetResults clears both history and configured results.
package mockdb
