package resource

import "errors"

var (
	ErrEmptyName     = errors.New("resource: name must not be empty")
	ErrNilFS         = errors.New("resource: file system is nil")
	ErrNotFound      = errors.New("resource: not found")
	ErrUnreadable    = errors.New("resource: unreadable")
	ErrSaveFailed    = errors.New("resource: failed to save")
	ErrNoBuildInfo   = errors.New("resource: build info not available")
	ErrDecodeFailure = errors.New("resource: failed to decode text")
)
