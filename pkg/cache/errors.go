package cache

import "errors"

var (
	// ErrFactoryFailed is returned when an OnDemand factory cannot produce a value
	ErrFactoryFailed = errors.New("cache: factory failed to produce value")

	// ErrKeyNotFound is returned by BackgroundRefresh.Get for a missing key without a factory
	ErrKeyNotFound = errors.New("cache: key not found")

	// ErrCleanupNil is returned when registering a nil cleanup with the janitor
	ErrCleanupNil = errors.New("cache: cleanup cannot be nil")

	// ErrCleanupAlreadyRegistered is returned when a cleanup name is reused
	ErrCleanupAlreadyRegistered = errors.New("cache: cleanup already registered")

	// ErrInvalidFrequency is returned when a cleanup frequency is not positive
	ErrInvalidFrequency = errors.New("cache: cleanup frequency must be positive")

	// ErrJanitorNotConfigured is returned when starting a janitor without cleanups
	ErrJanitorNotConfigured = errors.New("cache: janitor has no registered cleanups")
)
