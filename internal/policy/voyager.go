package policy

import "github.com/voyagerhq/voyager/pkg/types"

// referenceTables hold administratively owned, globally readable data.
var referenceTables = []string{
	types.TableCountries,
	types.TableVibeCategories,
	types.TableVibes,
	types.TableVibesCountry,
	types.TableCountryOverview,
	types.TableCountryBestTimes,
	types.TableCountryAiSuggest,
	types.TableCountryPodcasts,
}

// ownerTables map ownership-scoped tables to the column holding the
// owning subject id.
var ownerTables = map[string]string{
	types.TableCountriesVisited: "user_id",
	types.TableVibesUsers:       "user_id",
	types.TableProfiles:         "id",
}

var allActions = []types.Action{
	types.ActionSelect, types.ActionInsert, types.ActionUpdate, types.ActionDelete,
}

var allRoles = []types.Role{
	types.RoleAnonymous, types.RoleAuthenticated, types.RoleService,
}

// Default returns the voyager policy engine.
//
// Grants are deliberately permissive: every role, including anonymous,
// holds full table grants, and the row policies carry the enforcement.
// An anonymous select on countries therefore passes layer 1 and is denied
// at layer 2. Collapsing the two layers would erase that observable
// behavior, so they stay independent.
func Default() *Engine {
	e := NewEngine()

	for _, role := range allRoles {
		for _, table := range referenceTables {
			e.Grant(role, table, allActions...)
		}
		for table := range ownerTables {
			e.Grant(role, table, allActions...)
		}
	}

	// Reference data: readable by any authenticated subject. Writes have
	// no row policy, which leaves them to the service role alone.
	for _, table := range referenceTables {
		e.SetPolicy(table, types.ActionSelect, RowPolicy{Pred: authenticated})
	}

	// Ownership-scoped tables: every action requires the subject to own
	// the row. Insert and update are evaluated against the final row
	// value, so ownership cannot be reassigned by a write.
	for table, col := range ownerTables {
		pred := ownerOf(col)
		for _, a := range allActions {
			e.SetPolicy(table, a, RowPolicy{Pred: pred, OwnerColumn: col})
		}
	}

	return e
}

// authenticated admits any non-anonymous subject regardless of row
// content.
func authenticated(sub types.Subject, _ types.Row) bool {
	return sub.Role != types.RoleAnonymous
}

// ownerOf admits a subject only for rows it owns. With a nil row (select
// scoping) it admits any authenticated subject; the executor then filters
// the result set to the subject's own rows.
func ownerOf(col string) Predicate {
	return func(sub types.Subject, row types.Row) bool {
		if sub.Role == types.RoleAnonymous || sub.ID == "" {
			return false
		}
		if row == nil {
			return true
		}
		owner, _ := row[col].(string)
		return owner == sub.ID
	}
}
