package sqlite

import (
	"fmt"
	"strings"

	"github.com/voyagerhq/voyager/internal/policy"
	"github.com/voyagerhq/voyager/pkg/types"
)

// Executor is the composition point for every request: it authorizes via
// the policy engine before touching table data, routes mutations through
// the integrity manager, and serves aggregate reads from the stats
// materializer. All mutations run inside a single transaction; partial
// application is never observable.
type Executor struct {
	backend *Backend
	engine  *policy.Engine
}

// NewExecutor binds a policy engine to an attached backend.
func NewExecutor(b *Backend, e *policy.Engine) *Executor {
	return &Executor{backend: b, engine: e}
}

// Insert authorizes and applies one row insert. For tables with a
// generated id primary key, a missing or empty id is filled with a new
// UUID v7; the resulting id is returned. Junction tables return an empty
// id.
func (x *Executor) Insert(sub types.Subject, table string, row types.Row) (string, error) {
	x.backend.mu.Lock()
	defer x.backend.mu.Unlock()

	if !x.backend.attached {
		return "", types.ErrStoreDetached
	}
	t, err := x.backend.registry.Table(table)
	if err != nil {
		return "", err
	}

	final := cloneRow(row)
	id := ""
	if t.HasGeneratedID() {
		if s, _ := final["id"].(string); s != "" {
			id = s
		} else {
			id = generateUUID()
			final["id"] = id
		}
	}

	if err := x.engine.Authorize(sub, types.ActionInsert, table, final); err != nil {
		return "", err
	}

	tx, err := x.backend.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning insert: %w", err)
	}
	defer tx.Rollback()

	if err := validateInsert(tx, t, final); err != nil {
		return "", err
	}

	cols := make([]string, 0, len(t.Columns))
	marks := make([]string, 0, len(t.Columns))
	args := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		cols = append(cols, c.Name)
		marks = append(marks, "?")
		args = append(args, final[c.Name])
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(cols, ", "), strings.Join(marks, ", "))
	if _, err := tx.Exec(query, args...); err != nil {
		return "", fmt.Errorf("inserting into %s: %w", t.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing insert: %w", err)
	}
	return id, nil
}

// Update authorizes and applies a partial row update. The policy is
// evaluated twice: against the existing row, and again against the final
// row value, so a write cannot reassign ownership to another subject.
func (x *Executor) Update(sub types.Subject, table string, key, changes types.Row) error {
	x.backend.mu.Lock()
	defer x.backend.mu.Unlock()

	if !x.backend.attached {
		return types.ErrStoreDetached
	}
	t, err := x.backend.registry.Table(table)
	if err != nil {
		return err
	}

	tx, err := x.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning update: %w", err)
	}
	defer tx.Rollback()

	existing, err := readRow(tx, t, key)
	if err != nil {
		return err
	}
	if err := x.engine.Authorize(sub, types.ActionUpdate, table, existing); err != nil {
		return err
	}

	final, err := validateUpdate(tx, t, existing, changes)
	if err != nil {
		return err
	}
	// Re-check against the post-write row value.
	if err := x.engine.Authorize(sub, types.ActionUpdate, table, final); err != nil {
		return err
	}

	sets := make([]string, 0, len(t.Columns))
	args := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		sets = append(sets, c.Name+" = ?")
		args = append(args, final[c.Name])
	}
	where, whereArgs := whereEquals(t.PrimaryKey, existing)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", t.Name, strings.Join(sets, ", "), where)
	if _, err := tx.Exec(query, append(args, whereArgs...)...); err != nil {
		return fmt.Errorf("updating %s: %w", t.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}
	return nil
}

// Delete authorizes and applies a row delete with the declared
// cascade/restrict behavior, all inside one transaction.
func (x *Executor) Delete(sub types.Subject, table string, key types.Row) error {
	x.backend.mu.Lock()
	defer x.backend.mu.Unlock()

	if !x.backend.attached {
		return types.ErrStoreDetached
	}
	t, err := x.backend.registry.Table(table)
	if err != nil {
		return err
	}

	tx, err := x.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning delete: %w", err)
	}
	defer tx.Rollback()

	existing, err := readRow(tx, t, key)
	if err != nil {
		return err
	}
	if err := x.engine.Authorize(sub, types.ActionDelete, table, existing); err != nil {
		return err
	}
	if err := deleteCascade(tx, x.backend.registry, t, existing); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// Select authorizes and runs a filtered read. Filters are equality
// matches on known columns, plus an optional "limit". Ownership-scoped
// tables are forced to the subject's own rows unless the subject is the
// service role. No exclusive lock is taken: the read observes whatever
// committed state is visible at query time.
func (x *Executor) Select(sub types.Subject, table string, filter types.Row) ([]types.Row, error) {
	x.backend.mu.RLock()
	defer x.backend.mu.RUnlock()

	if !x.backend.attached {
		return nil, types.ErrStoreDetached
	}
	t, err := x.backend.registry.Table(table)
	if err != nil {
		return nil, err
	}
	if err := x.engine.Authorize(sub, types.ActionSelect, table, nil); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any
	limit := int64(0)

	for col, v := range filter {
		if col == "limit" {
			n, ok := toInt(v)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			limit = n
			continue
		}
		if t.Column(col) == nil {
			return nil, fmt.Errorf("%w: %s.%s", types.ErrUnknownColumn, t.Name, col)
		}
		conditions = append(conditions, col+" = ?")
		args = append(args, v)
	}

	// Owner scoping: the row policy for these tables admits only the
	// subject's own rows, expressed here as a mandatory filter.
	if ownerCol, ok := x.engine.OwnerColumn(table); ok && sub.Role != types.RoleService {
		conditions = append(conditions, ownerCol+" = ?")
		args = append(args, sub.ID)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", columnList(t), t.Name)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + strings.Join(t.PrimaryKey, ", ")
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := x.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting from %s: %w", t.Name, err)
	}
	defer rows.Close()

	results := []types.Row{}
	for rows.Next() {
		r, err := scanRow(t, rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// cloneRow copies a row so defaults and generated ids never mutate the
// caller's map.
func cloneRow(row types.Row) types.Row {
	out := make(types.Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// toInt converts various numeric types to int64.
func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
