package migrate

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/voyagerhq/voyager/pkg/types"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func ledgerVersions(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT version FROM schema_migrations ORDER BY version")
	require.NoError(t, err)
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		require.NoError(t, rows.Scan(&v))
		versions = append(versions, v)
	}
	require.NoError(t, rows.Err())
	return versions
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestSequencerAppliesInOrder(t *testing.T) {
	db := openTestDB(t)

	migrations := []Migration{
		{Version: "20250101000000", Name: "create_a", Steps: []string{
			`CREATE TABLE a (id TEXT PRIMARY KEY);`,
		}},
		{Version: "20250102000000", Name: "create_b", Steps: []string{
			`CREATE TABLE b (id TEXT PRIMARY KEY);`,
		}},
	}

	require.NoError(t, NewSequencer(db).Apply(migrations))

	assert.True(t, tableExists(t, db, "a"))
	assert.True(t, tableExists(t, db, "b"))
	assert.Equal(t, []string{"20250101000000", "20250102000000"}, ledgerVersions(t, db))
}

func TestSequencerIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	migrations := []Migration{
		{Version: "20250101000000", Name: "create_a", Steps: []string{
			`CREATE TABLE a (id TEXT PRIMARY KEY);`,
		}},
	}

	s := NewSequencer(db)
	require.NoError(t, s.Apply(migrations))
	// Re-running the same sequence is a no-op: a CREATE TABLE replay
	// would fail, so reaching here proves nothing re-ran.
	require.NoError(t, s.Apply(migrations))
	assert.Len(t, ledgerVersions(t, db), 1)

	// A new migration appended to the sequence applies alone.
	migrations = append(migrations, Migration{
		Version: "20250102000000", Name: "create_b", Steps: []string{
			`CREATE TABLE b (id TEXT PRIMARY KEY);`,
		},
	})
	require.NoError(t, s.Apply(migrations))
	assert.True(t, tableExists(t, db, "b"))
	assert.Len(t, ledgerVersions(t, db), 2)
}

func TestSequencerRejectsUnorderedInput(t *testing.T) {
	db := openTestDB(t)

	migrations := []Migration{
		{Version: "20250102000000", Name: "second", Steps: []string{`CREATE TABLE b (id TEXT);`}},
		{Version: "20250101000000", Name: "first", Steps: []string{`CREATE TABLE a (id TEXT);`}},
	}

	err := NewSequencer(db).Apply(migrations)
	require.ErrorIs(t, err, types.ErrMigrationOrder)
	assert.False(t, tableExists(t, db, "a"))
	assert.False(t, tableExists(t, db, "b"))
}

func TestSequencerRejectsLedgerMismatch(t *testing.T) {
	db := openTestDB(t)

	s := NewSequencer(db)
	require.NoError(t, s.Apply([]Migration{
		{Version: "20250101000000", Name: "create_a", Steps: []string{`CREATE TABLE a (id TEXT);`}},
	}))

	// The ledger entry is not a prefix of the new input: fatal, nothing
	// applied.
	err := s.Apply([]Migration{
		{Version: "20250103000000", Name: "create_c", Steps: []string{`CREATE TABLE c (id TEXT);`}},
	})
	require.ErrorIs(t, err, types.ErrMigrationOrder)
	assert.False(t, tableExists(t, db, "c"))

	// More ledger entries than input migrations is equally fatal.
	err = s.Apply(nil)
	require.ErrorIs(t, err, types.ErrMigrationOrder)
}

func TestSequencerRollsBackFailedUnit(t *testing.T) {
	db := openTestDB(t)

	migrations := []Migration{
		{Version: "20250101000000", Name: "create_a", Steps: []string{
			`CREATE TABLE a (id TEXT PRIMARY KEY);`,
		}},
		{Version: "20250102000000", Name: "broken", Steps: []string{
			`CREATE TABLE b (id TEXT PRIMARY KEY);`,
			`THIS IS NOT SQL;`,
		}},
	}

	err := NewSequencer(db).Apply(migrations)
	require.ErrorIs(t, err, types.ErrMigrationFailure)

	// The first unit committed; the failed unit left nothing behind, not
	// even its successful first step.
	assert.True(t, tableExists(t, db, "a"))
	assert.False(t, tableExists(t, db, "b"))
	assert.Equal(t, []string{"20250101000000"}, ledgerVersions(t, db))
}

func TestSequencerRefusesConcurrentApply(t *testing.T) {
	db := openTestDB(t)

	s := NewSequencer(db)
	s.inFlight.Store(true)
	err := s.Apply(nil)
	require.ErrorIs(t, err, types.ErrMigrationInFlight)

	s.inFlight.Store(false)
	require.NoError(t, s.Apply(nil))
}

func TestVoyagerMigrationSet(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, NewSequencer(db).Apply(All()))

	for _, table := range []string{
		"countries", "vibe_categories", "vibes", "vibes_country",
		"profiles", "countries_visited", "vibes_users",
		"country_overview", "country_best_times", "country_ai_suggests",
		"country_podcasts", "schema_migrations",
	} {
		assert.True(t, tableExists(t, db, table), "missing table %s", table)
	}

	// The flag column replacement landed: flag_full_path exists and the
	// old flag_emoji column is gone.
	_, err := db.Exec(`INSERT INTO countries
		(id, iso2, name, capital, continent, primary_language,
		 primary_language_code, primary_currency, primary_currency_code,
		 flag_full_path)
		VALUES ('c1', 'JP', 'Japan', 'Tokyo', 'Asia', 'Japanese', 'JA', 'Yen', 'JPY', 'flags/jp.svg')`)
	require.NoError(t, err)

	var hex string
	require.NoError(t, db.QueryRow("SELECT background_hex FROM countries WHERE id = 'c1'").Scan(&hex))
	assert.Equal(t, "#FFFFFF", hex, "background_hex default applies to new rows")

	err = db.QueryRow("SELECT flag_emoji FROM countries WHERE id = 'c1'").Scan(new(string))
	require.Error(t, err, "flag_emoji should no longer exist")

	versions := ledgerVersions(t, db)
	require.Len(t, versions, len(All()))
	assert.Equal(t, "20250520143000", versions[len(versions)-1])
}
