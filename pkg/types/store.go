package types

import "errors"

// Store defines the lifecycle of a storage backend. Callers attach with a
// Config, operate through an executor bound to the backend, and detach
// when done.
type Store interface {
	// Attach opens the backend described by config, creating the data
	// directory if needed and bringing the schema up to date. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrTableNotFound   = errors.New("table not found")
)
