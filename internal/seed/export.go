package seed

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/voyagerhq/voyager/internal/sqlite"
	"github.com/voyagerhq/voyager/pkg/types"
)

// Export writes the current reference-data tables to JSONL files in dir,
// one file per table, using the atomic write pattern. The output is a
// valid seed feed for Loader.Run.
func Export(exec *sqlite.Executor, dir string) error {
	sub := types.Service()
	for _, table := range feedTables {
		rows, err := exec.Select(sub, table, nil)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", table, err)
		}
		records := make([]json.RawMessage, 0, len(rows))
		for _, row := range rows {
			rec, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("marshaling %s row: %w", table, err)
			}
			records = append(records, rec)
		}
		if err := writeJSONL(filepath.Join(dir, table+".jsonl"), records); err != nil {
			return fmt.Errorf("writing %s feed: %w", table, err)
		}
	}
	return nil
}
