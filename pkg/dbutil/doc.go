// Package dbutil wraps a *sql.DB with the small set of execution helpers most
// data access code needs: run a statement and get the affected row count, read
// a single scalar, stream rows, or load every result set into memory.
//
// Parameters are collected in a ParameterSet which supports plain positional
// values, named input values and output or input/output parameters bound to a
// destination pointer through sql.Out.
//
//	u := dbutil.New(db, dbutil.WithLogger(log))
//
//	params := dbutil.NewParameterSet().
//		Add("customer", 42).
//		AddOut("order_id", &orderID)
//
//	n, err := u.ExecuteNonQuery(ctx, "create_order", params)
//
// Utility works with any database/sql driver. Tests in this module use the
// mockdb driver and go-sqlmock; production code typically opens the connection
// through pkg/pg.
//
// WithTx runs a function against a Utility bound to a transaction, committing
// when the function returns nil and rolling back otherwise.
package dbutil
