package types

import "errors"

// Constraint and policy errors. Mutations never commit partially: when one
// of these is returned, no row change is observable.
var (
	// ErrUniqueViolation reports an insert or update that duplicates an
	// existing unique key (e.g. a second country with the same iso2).
	ErrUniqueViolation = errors.New("unique violation")

	// ErrForeignKeyViolation reports a mutation referencing a missing
	// parent row, or a delete blocked by RESTRICT dependents.
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrCheckViolation reports a row value failing a declared check
	// constraint (e.g. a non-uppercase code field).
	ErrCheckViolation = errors.New("check violation")

	// ErrForbidden reports a Policy Engine denial at either the table
	// grant layer or the row policy layer.
	ErrForbidden = errors.New("forbidden")
)

// Migration errors. Migration failures are fatal to the deploy path.
var (
	// ErrMigrationFailure reports a failed step inside a migration unit.
	// The unit is rolled back and the ledger is not advanced.
	ErrMigrationFailure = errors.New("migration failure")

	// ErrMigrationOrder reports migrations applied out of ascending
	// version order, or a ledger entry missing from the input sequence.
	ErrMigrationOrder = errors.New("migration ordering error")

	// ErrMigrationInFlight reports a second Apply while one is running.
	ErrMigrationInFlight = errors.New("migration already in flight")
)

// Entity and request errors.
var (
	ErrNotFound      = errors.New("row not found")
	ErrInvalidData   = errors.New("invalid row data")
	ErrInvalidFilter = errors.New("invalid filter value type")
	ErrUnknownColumn = errors.New("unknown column")
)
