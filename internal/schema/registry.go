// Package schema holds the canonical table definitions for the voyager
// relational core: columns, check constraints, unique keys, and foreign
// keys tagged with their declared on-delete behavior. The integrity
// manager and the executor validate every mutation against this metadata.
package schema

import (
	"fmt"

	"github.com/voyagerhq/voyager/pkg/types"
)

// ColType is the storage type of a column.
type ColType string

const (
	TypeText    ColType = "TEXT"
	TypeInteger ColType = "INTEGER"
	TypeReal    ColType = "REAL"
)

// OnDelete declares what happens to dependent rows when a referenced row
// is deleted. The policy is fixed per relationship, never inferred.
type OnDelete int

const (
	// Restrict refuses the delete while dependent rows exist.
	Restrict OnDelete = iota
	// Cascade deletes dependent rows atomically with their parent.
	Cascade
)

// String returns the DDL spelling of the on-delete action.
func (d OnDelete) String() string {
	if d == Cascade {
		return "CASCADE"
	}
	return "RESTRICT"
}

// CheckFn validates a single column value. Returning an error marks the
// row as failing a check constraint.
type CheckFn func(value any) error

// Column describes one column of a table.
type Column struct {
	Name     string
	Type     ColType
	Nullable bool
	Default  any     // applied when the column is absent from an insert row
	Check    CheckFn // optional, evaluated against the final row value
}

// ForeignKey describes a reference from one column to a parent table.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  OnDelete
}

// Table describes one entity table.
type Table struct {
	Name        string
	Columns     []Column
	PrimaryKey  []string   // one or more column names (composite for junctions)
	Uniques     [][]string // unique keys beyond the primary key
	ForeignKeys []ForeignKey
}

// Column returns the named column definition, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// HasGeneratedID reports whether the table uses a single generated "id"
// primary key (as opposed to a composite junction key).
func (t *Table) HasGeneratedID() bool {
	return len(t.PrimaryKey) == 1 && t.PrimaryKey[0] == "id"
}

// Dependent pairs a dependent table with the foreign key pointing at the
// parent, for cascade/restrict resolution on delete.
type Dependent struct {
	Table      *Table
	ForeignKey ForeignKey
}

// Registry is the schema registry: table definitions keyed by name plus a
// reverse index of dependents per parent table.
type Registry struct {
	tables     map[string]*Table
	order      []string
	dependents map[string][]Dependent
}

// NewRegistry builds a registry from table definitions. Definition order
// is preserved for deterministic iteration.
func NewRegistry(tables ...*Table) *Registry {
	r := &Registry{
		tables:     make(map[string]*Table, len(tables)),
		dependents: make(map[string][]Dependent),
	}
	for _, t := range tables {
		r.tables[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	for _, t := range tables {
		for _, fk := range t.ForeignKeys {
			r.dependents[fk.RefTable] = append(r.dependents[fk.RefTable], Dependent{Table: t, ForeignKey: fk})
		}
	}
	return r
}

// Table returns the named table definition.
// Returns types.ErrTableNotFound for unknown names.
func (r *Registry) Table(name string) (*Table, error) {
	t, ok := r.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrTableNotFound, name)
	}
	return t, nil
}

// Tables returns all table definitions in definition order.
func (r *Registry) Tables() []*Table {
	out := make([]*Table, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tables[name])
	}
	return out
}

// Dependents returns the tables holding a foreign key into the given
// parent table. Used by the integrity manager to apply the declared
// cascade/restrict policy on delete.
func (r *Registry) Dependents(parent string) []Dependent {
	return r.dependents[parent]
}
