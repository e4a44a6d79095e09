package dbutil

import "errors"

var (
	ErrOpenFailed     = errors.New("dbutil: failed to open database")
	ErrExecuteFailed  = errors.New("dbutil: failed to execute command")
	ErrQueryFailed    = errors.New("dbutil: failed to execute query")
	ErrScanFailed     = errors.New("dbutil: failed to read result")
	ErrNoResult       = errors.New("dbutil: query returned no result")
	ErrTxFailed       = errors.New("dbutil: transaction failed")
	ErrNilDestination = errors.New("dbutil: output parameter requires a destination pointer")
	ErrNilCallback    = errors.New("dbutil: callback is nil")
)
