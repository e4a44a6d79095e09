package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationError and ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingValues is returned when That is called without values. It is a
	// usage error and does not match ErrValidationFailed.
	ErrMissingValues = errors.New("missing parameters to validate")

	// ErrAlreadyValidated is returned when a chain is used after its terminal call.
	ErrAlreadyValidated = errors.New("chain already validated")

	// ErrUnknownPattern is returned for pattern types outside the pattern table.
	ErrUnknownPattern = errors.New("unknown pattern type")

	// ErrInvalidPattern is returned when a regular expression fails to compile.
	ErrInvalidPattern = errors.New("invalid regular expression pattern")
)

// Messages recorded by chain rules. They are kept stable so callers may match on them.
const (
	msgAlreadyValidated = "Already validated. Verify that there is only one ThrowOnError() method at the end."
	msgParameterFailed  = "%d parameter failed."
	msgMissingParameter = "Failed because %s parameter is null."
	msgInvalidParameter = "Failed because %s parameter is invalid."
)
