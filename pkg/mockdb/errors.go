package mockdb

import "errors"

var (
	ErrOpenFailed       = errors.New("mock connection refused to open")
	ErrConnClosed       = errors.New("mock connection is closed")
	ErrTxInProgress     = errors.New("mock connection already has an open transaction")
	ErrBeginFailed      = errors.New("mock transaction refused to begin")
	ErrCommitFailed     = errors.New("mock transaction refused to commit")
	ErrRollbackFailed   = errors.New("mock transaction refused to roll back")
	ErrExecuteFailed    = errors.New("mock command failed")
	ErrSimulated        = errors.New("simulated failure")
	ErrOutParamNotSet   = errors.New("output parameter destination is not settable")
	ErrOutParamMismatch = errors.New("output parameter value cannot be assigned to destination")
)
