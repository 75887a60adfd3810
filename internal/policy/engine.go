// Package policy implements the two-layer authorization model: coarse
// table grants per (role, table, action), then row policies as explicit
// predicate functions per (table, action). Both layers must allow a
// request; evaluation short-circuits on the first denial and the result
// is always a binary allow/deny.
package policy

import (
	"fmt"

	"github.com/voyagerhq/voyager/pkg/types"
)

// Predicate decides whether a subject may act on a row. For select
// requests the row is nil and the predicate judges the subject alone;
// the executor then scopes owner tables by OwnerColumn.
type Predicate func(sub types.Subject, row types.Row) bool

// RowPolicy is the layer-2 rule for one (table, action) pair.
type RowPolicy struct {
	Pred Predicate
	// OwnerColumn names the column holding the owning subject id on
	// ownership-scoped tables; empty for reference data.
	OwnerColumn string
}

type grantKey struct {
	role   types.Role
	table  string
	action types.Action
}

type policyKey struct {
	table  string
	action types.Action
}

// Engine evaluates table grants and row policies.
type Engine struct {
	grants   map[grantKey]bool
	policies map[policyKey]RowPolicy
}

// NewEngine creates an empty engine. Default deny: without an explicit
// grant and an explicit row policy, every request is refused.
func NewEngine() *Engine {
	return &Engine{
		grants:   make(map[grantKey]bool),
		policies: make(map[policyKey]RowPolicy),
	}
}

// Grant adds a table-level privilege for one role.
func (e *Engine) Grant(role types.Role, table string, actions ...types.Action) {
	for _, a := range actions {
		e.grants[grantKey{role, table, a}] = true
	}
}

// Granted reports whether the role holds the table-level privilege.
// This is layer 1: necessary but not sufficient.
func (e *Engine) Granted(role types.Role, table string, action types.Action) bool {
	return e.grants[grantKey{role, table, action}]
}

// SetPolicy installs the row policy for one (table, action) pair.
func (e *Engine) SetPolicy(table string, action types.Action, p RowPolicy) {
	e.policies[policyKey{table, action}] = p
}

// OwnerColumn returns the owning-subject column for a table's select
// policy, if the table is ownership-scoped.
func (e *Engine) OwnerColumn(table string) (string, bool) {
	p, ok := e.policies[policyKey{table, types.ActionSelect}]
	if !ok || p.OwnerColumn == "" {
		return "", false
	}
	return p.OwnerColumn, true
}

// Authorize evaluates both layers in order: table grant first, then row
// policy, short-circuiting on the first denial. The service role passes
// row policies outright (it still needs the table grant), mirroring a
// service key bypassing row-level security. For mutations, callers must
// pass the final row value so a write cannot reassign ownership.
func (e *Engine) Authorize(sub types.Subject, action types.Action, table string, row types.Row) error {
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrForbidden, err)
	}
	if !e.Granted(sub.Role, table, action) {
		return fmt.Errorf("%w: role %s has no %s grant on %s", types.ErrForbidden, sub.Role, action, table)
	}
	if sub.Role == types.RoleService {
		return nil
	}
	p, ok := e.policies[policyKey{table, action}]
	if !ok || p.Pred == nil {
		return fmt.Errorf("%w: no row policy permits %s on %s", types.ErrForbidden, action, table)
	}
	if !p.Pred(sub, row) {
		return fmt.Errorf("%w: row policy denied %s on %s", types.ErrForbidden, action, table)
	}
	return nil
}
