package serialize

import "errors"

var (
	ErrMarshal    = errors.New("serialize: failed to marshal value")
	ErrUnmarshal  = errors.New("serialize: failed to unmarshal value")
	ErrInvalidXML = errors.New("serialize: invalid xml")
	ErrEmptyInput = errors.New("serialize: empty input")
	ErrFile       = errors.New("serialize: file operation failed")
)
