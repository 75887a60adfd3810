package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/voyagerhq/voyager/internal/sqlite"
	"github.com/voyagerhq/voyager/pkg/types"
)

// feedTables lists the seedable tables in parent-before-child order, so
// foreign keys resolve as the feed loads.
var feedTables = []string{
	types.TableCountries,
	types.TableVibeCategories,
	types.TableVibes,
	types.TableVibesCountry,
	types.TableCountryOverview,
	types.TableCountryBestTimes,
	types.TableCountryAiSuggest,
	types.TableCountryPodcasts,
}

// Loader ingests JSONL seed files through the executor under the service
// role.
type Loader struct {
	exec *sqlite.Executor
}

// NewLoader creates a Loader over the given executor.
func NewLoader(exec *sqlite.Executor) *Loader {
	return &Loader{exec: exec}
}

// Run loads every present seed file from dir, in dependency order, and
// returns the number of rows inserted. A row that violates the schema's
// constraints aborts the run with the violation; already-loaded rows from
// earlier files stay (each insert is its own transaction, matching the
// per-row atomicity of the ingestion contract).
func (l *Loader) Run(dir string) (int, error) {
	inserted := 0
	for _, table := range feedTables {
		path := filepath.Join(dir, table+".jsonl")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		n, err := l.loadFile(table, path)
		inserted += n
		if err != nil {
			return inserted, err
		}
	}
	return inserted, nil
}

// loadFile ingests one table's feed file.
func (l *Loader) loadFile(table, path string) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, err
	}
	sub := types.Service()
	for i, rec := range records {
		var row types.Row
		if err := json.Unmarshal(rec, &row); err != nil {
			return i, fmt.Errorf("%s record %d: %w", path, i+1, err)
		}
		if _, err := l.exec.Insert(sub, table, row); err != nil {
			return i, fmt.Errorf("%s record %d: %w", path, i+1, err)
		}
	}
	return len(records), nil
}
