// Package sqlite implements the SQLite storage backend for voyager: the
// attach/detach lifecycle, the referential integrity manager, the query
// executor, and the travel-stats materializer.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/voyagerhq/voyager/internal/migrate"
	"github.com/voyagerhq/voyager/internal/schema"
	"github.com/voyagerhq/voyager/pkg/types"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "voyager.db"

// Backend implements the Store interface over a SQLite database file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	registry *schema.Registry
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens the database file under config.DataDir, creating the
// directory if needed, and brings the schema up to date by running the
// migration sequence. Returns ErrAlreadyAttached if already attached;
// migration failures abort the attach and leave the backend detached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(config.DataDir, dbFileName))
	if err != nil {
		return err
	}

	// A partially migrated schema must not be used.
	if err := migrate.NewSequencer(db).Apply(migrate.All()); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.registry = schema.Default()
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent. After Detach, operations return
// ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// Registry returns the schema registry for the attached backend.
func (b *Backend) Registry() *schema.Registry {
	return b.registry
}

// generateUUID generates a new UUID v7 for row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
