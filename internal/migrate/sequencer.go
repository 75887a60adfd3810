// Package migrate applies ordered schema deltas and keeps the append-only
// ledger of what has been applied. Each migration unit runs inside one
// transaction: on any step failure the unit rolls back and the ledger is
// not advanced. Units are applied strictly in ascending version order;
// re-runs are idempotent and gaps are fatal.
package migrate

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/voyagerhq/voyager/pkg/types"
)

// Migration is one atomic unit of schema change. Version is a sortable
// timestamp string (YYYYMMDDHHMMSS); Steps are executed in order inside a
// single transaction and are never implicitly merged or reordered.
type Migration struct {
	Version string
	Name    string
	Steps   []string
}

// ledgerDDL creates the applied-migrations ledger on first run.
const ledgerDDL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TEXT NOT NULL
);`

// Sequencer applies migrations against one database. Migrations are
// single-writer: a second Apply while one is in flight is refused.
type Sequencer struct {
	db       *sql.DB
	inFlight atomic.Bool
}

// NewSequencer creates a Sequencer over the given database handle.
func NewSequencer(db *sql.DB) *Sequencer {
	return &Sequencer{db: db}
}

// Apply brings the database up to date with the given migration sequence.
// Already-applied migrations are skipped; pending ones run in order, each
// in its own transaction. Returns ErrMigrationInFlight if another Apply is
// running, ErrMigrationOrder if the input or the ledger is out of order,
// and ErrMigrationFailure if a step fails (that unit is rolled back).
func (s *Sequencer) Apply(migrations []Migration) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return types.ErrMigrationInFlight
	}
	defer s.inFlight.Store(false)

	if err := validateSequence(migrations); err != nil {
		return err
	}
	if _, err := s.db.Exec(ledgerDDL); err != nil {
		return fmt.Errorf("%w: creating ledger: %v", types.ErrMigrationFailure, err)
	}

	applied, err := s.appliedVersions()
	if err != nil {
		return err
	}
	pending, err := pendingAfter(migrations, applied)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := s.applyOne(m); err != nil {
			return err
		}
	}
	return nil
}

// validateSequence checks that versions are strictly ascending and unique.
func validateSequence(migrations []Migration) error {
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version <= migrations[i-1].Version {
			return fmt.Errorf("%w: %s does not ascend from %s",
				types.ErrMigrationOrder, migrations[i].Version, migrations[i-1].Version)
		}
	}
	return nil
}

// appliedVersions loads the ledger in version order.
func (s *Sequencer) appliedVersions() ([]string, error) {
	rows, err := s.db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("%w: reading ledger: %v", types.ErrMigrationFailure, err)
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: scanning ledger: %v", types.ErrMigrationFailure, err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// pendingAfter returns the migrations not yet in the ledger. The ledger
// must be an exact prefix of the input sequence: a ledger entry missing
// from the input, or an input entry skipped in the ledger, is a fatal
// configuration error.
func pendingAfter(migrations []Migration, applied []string) ([]Migration, error) {
	if len(applied) > len(migrations) {
		return nil, fmt.Errorf("%w: ledger has %d entries but only %d migrations were given",
			types.ErrMigrationOrder, len(applied), len(migrations))
	}
	for i, v := range applied {
		if migrations[i].Version != v {
			return nil, fmt.Errorf("%w: ledger entry %s does not match migration %s",
				types.ErrMigrationOrder, v, migrations[i].Version)
		}
	}
	return migrations[len(applied):], nil
}

// applyOne runs a single migration unit in one transaction and records it
// in the ledger. Partial application is never observable.
func (s *Sequencer) applyOne(m Migration) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %s: begin: %v", types.ErrMigrationFailure, m.Version, err)
	}
	defer tx.Rollback()

	for i, step := range m.Steps {
		if _, err := tx.Exec(step); err != nil {
			return fmt.Errorf("%w: %s %s step %d: %v",
				types.ErrMigrationFailure, m.Version, m.Name, i+1, err)
		}
	}

	appliedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
		m.Version, m.Name, appliedAt); err != nil {
		return fmt.Errorf("%w: %s: advancing ledger: %v", types.ErrMigrationFailure, m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: commit: %v", types.ErrMigrationFailure, m.Version, err)
	}
	return nil
}
