package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/voyagerhq/voyager/internal/schema"
	"github.com/voyagerhq/voyager/pkg/types"
)

// Referential integrity manager. Every mutation is validated against the
// schema registry inside the caller's transaction before any row is
// persisted: foreign keys must reference existing parents, check
// constraints are evaluated against the final row value, and unique keys
// are probed. On delete, the declared per-relationship policy is applied:
// CASCADE removes dependents in the same transaction, RESTRICT refuses
// the delete while dependents exist.

// validateInsert checks an insert row. It applies column defaults in
// place and returns a typed violation on failure.
func validateInsert(tx *sql.Tx, t *schema.Table, row types.Row) error {
	if err := checkColumnsKnown(t, row); err != nil {
		return err
	}
	if err := applyDefaultsAndChecks(t, row); err != nil {
		return err
	}
	if err := checkUniqueKeys(tx, t, row, nil); err != nil {
		return err
	}
	return checkForeignKeys(tx, t, row)
}

// validateUpdate checks an update. existing is the current row; changes
// are merged into a copy to produce the final row value, which is what
// all constraints are evaluated against.
func validateUpdate(tx *sql.Tx, t *schema.Table, existing, changes types.Row) (types.Row, error) {
	if err := checkColumnsKnown(t, changes); err != nil {
		return nil, err
	}
	final := make(types.Row, len(existing))
	for k, v := range existing {
		final[k] = v
	}
	for k, v := range changes {
		final[k] = v
	}
	if err := applyDefaultsAndChecks(t, final); err != nil {
		return nil, err
	}
	if err := checkUniqueKeys(tx, t, final, existing); err != nil {
		return nil, err
	}
	if err := checkForeignKeys(tx, t, final); err != nil {
		return nil, err
	}
	return final, nil
}

// checkColumnsKnown rejects rows referencing columns absent from the
// registry definition.
func checkColumnsKnown(t *schema.Table, row types.Row) error {
	for col := range row {
		if t.Column(col) == nil {
			return fmt.Errorf("%w: %s.%s", types.ErrUnknownColumn, t.Name, col)
		}
	}
	return nil
}

// applyDefaultsAndChecks fills missing columns from declared defaults,
// enforces nullability, and runs check constraints on final values.
func applyDefaultsAndChecks(t *schema.Table, row types.Row) error {
	for i := range t.Columns {
		col := &t.Columns[i]
		v, present := row[col.Name]
		if !present || v == nil {
			if col.Default != nil {
				row[col.Name] = col.Default
				continue
			}
			if col.Nullable {
				row[col.Name] = nil
				continue
			}
			return fmt.Errorf("%w: %s.%s must not be null", types.ErrCheckViolation, t.Name, col.Name)
		}
		if col.Check != nil {
			if err := col.Check(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkUniqueKeys probes the primary key and every declared unique key.
// For updates, a match on the row's own prior key values is not a
// conflict.
func checkUniqueKeys(tx *sql.Tx, t *schema.Table, row, existing types.Row) error {
	keys := append([][]string{t.PrimaryKey}, t.Uniques...)
	for _, cols := range keys {
		if existing != nil && keyUnchanged(cols, row, existing) {
			continue
		}
		where, args := whereEquals(cols, row)
		query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s", t.Name, where)
		var one int
		err := tx.QueryRow(query, args...).Scan(&one)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return fmt.Errorf("probing unique key on %s: %w", t.Name, err)
		}
		return fmt.Errorf("%w: %s (%s)", types.ErrUniqueViolation, t.Name, strings.Join(cols, ", "))
	}
	return nil
}

func keyUnchanged(cols []string, row, existing types.Row) bool {
	for _, c := range cols {
		if row[c] != existing[c] {
			return false
		}
	}
	return true
}

// checkForeignKeys verifies that every non-nil foreign key value
// references an existing parent row.
func checkForeignKeys(tx *sql.Tx, t *schema.Table, row types.Row) error {
	for _, fk := range t.ForeignKeys {
		v := row[fk.Column]
		if v == nil {
			continue
		}
		query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ?", fk.RefTable, fk.RefColumn)
		var one int
		err := tx.QueryRow(query, v).Scan(&one)
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: %s.%s references missing %s row",
				types.ErrForeignKeyViolation, t.Name, fk.Column, fk.RefTable)
		}
		if err != nil {
			return fmt.Errorf("probing foreign key %s.%s: %w", t.Name, fk.Column, err)
		}
	}
	return nil
}

// deleteCascade deletes the row identified by key, applying the declared
// on-delete policy of every dependent relationship. RESTRICT dependents
// are checked before any deletion; CASCADE dependents are removed
// recursively in the same transaction.
func deleteCascade(tx *sql.Tx, reg *schema.Registry, t *schema.Table, key types.Row) error {
	existing, err := readRow(tx, t, key)
	if err != nil {
		return err
	}

	// RESTRICT first: the whole delete is refused before anything is
	// touched.
	for _, dep := range reg.Dependents(t.Name) {
		if dep.ForeignKey.OnDelete != schema.Restrict {
			continue
		}
		n, err := countDependents(tx, dep, existing)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: %s row is referenced by %d %s row(s)",
				types.ErrForeignKeyViolation, t.Name, n, dep.Table.Name)
		}
	}

	for _, dep := range reg.Dependents(t.Name) {
		if dep.ForeignKey.OnDelete != schema.Cascade {
			continue
		}
		depKeys, err := dependentKeys(tx, dep, existing)
		if err != nil {
			return err
		}
		for _, dk := range depKeys {
			if err := deleteCascade(tx, reg, dep.Table, dk); err != nil {
				return err
			}
		}
	}

	where, args := whereEquals(t.PrimaryKey, key)
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s", t.Name, where), args...); err != nil {
		return fmt.Errorf("deleting from %s: %w", t.Name, err)
	}
	return nil
}

// countDependents counts rows in the dependent table referencing the
// parent row.
func countDependents(tx *sql.Tx, dep schema.Dependent, parent types.Row) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", dep.Table.Name, dep.ForeignKey.Column)
	var n int64
	if err := tx.QueryRow(query, parent[dep.ForeignKey.RefColumn]).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s dependents: %w", dep.Table.Name, err)
	}
	return n, nil
}

// dependentKeys returns the primary keys of dependent rows referencing
// the parent row.
func dependentKeys(tx *sql.Tx, dep schema.Dependent, parent types.Row) ([]types.Row, error) {
	cols := strings.Join(dep.Table.PrimaryKey, ", ")
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", cols, dep.Table.Name, dep.ForeignKey.Column)
	rows, err := tx.Query(query, parent[dep.ForeignKey.RefColumn])
	if err != nil {
		return nil, fmt.Errorf("listing %s dependents: %w", dep.Table.Name, err)
	}
	defer rows.Close()

	var keys []types.Row
	for rows.Next() {
		vals := make([]string, len(dep.Table.PrimaryKey))
		ptrs := make([]any, len(vals))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning %s dependent key: %w", dep.Table.Name, err)
		}
		k := make(types.Row, len(vals))
		for i, col := range dep.Table.PrimaryKey {
			k[col] = vals[i]
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// readRow loads one row by key within the transaction.
// Returns ErrNotFound if no row matches.
func readRow(tx *sql.Tx, t *schema.Table, key types.Row) (types.Row, error) {
	for _, pk := range t.PrimaryKey {
		if _, ok := key[pk]; !ok {
			return nil, fmt.Errorf("%w: key missing column %s", types.ErrInvalidData, pk)
		}
	}
	where, args := whereEquals(t.PrimaryKey, key)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", columnList(t), t.Name, where)

	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("reading %s row: %w", t.Name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", types.ErrNotFound, t.Name)
	}
	return scanRow(t, rows)
}

// whereEquals builds "a = ? AND b = ?" over the given columns.
func whereEquals(cols []string, row types.Row) (string, []any) {
	parts := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		parts[i] = c + " = ?"
		args[i] = row[c]
	}
	return strings.Join(parts, " AND "), args
}

// columnList returns the comma-joined column names of a table.
func columnList(t *schema.Table) string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// scanRow scans the current result row into a types.Row using the
// registry column types.
func scanRow(t *schema.Table, rows *sql.Rows) (types.Row, error) {
	ptrs := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		switch c.Type {
		case schema.TypeInteger:
			ptrs[i] = new(sql.NullInt64)
		case schema.TypeReal:
			ptrs[i] = new(sql.NullFloat64)
		default:
			ptrs[i] = new(sql.NullString)
		}
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("scanning %s row: %w", t.Name, err)
	}

	row := make(types.Row, len(t.Columns))
	for i, c := range t.Columns {
		switch p := ptrs[i].(type) {
		case *sql.NullInt64:
			if p.Valid {
				row[c.Name] = p.Int64
			} else {
				row[c.Name] = nil
			}
		case *sql.NullFloat64:
			if p.Valid {
				row[c.Name] = p.Float64
			} else {
				row[c.Name] = nil
			}
		case *sql.NullString:
			if p.Valid {
				row[c.Name] = p.String
			} else {
				row[c.Name] = nil
			}
		}
	}
	return row, nil
}
