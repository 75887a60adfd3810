// Package integration provides shared helpers for the end-to-end test
// suite. Each test attaches its own store in an isolated temp directory.
package integration

import (
	"testing"

	"github.com/voyagerhq/voyager/internal/policy"
	"github.com/voyagerhq/voyager/internal/sqlite"
	"github.com/voyagerhq/voyager/pkg/types"
)

// setupStore attaches a backend to an isolated temp directory and returns
// an executor over it with the default policy engine.
func setupStore(t *testing.T) (*sqlite.Executor, string) {
	t.Helper()
	dir := t.TempDir()
	b := sqlite.NewBackend()
	if err := b.Attach(types.Config{DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return sqlite.NewExecutor(b, policy.Default()), dir
}

// mustInsert inserts a row as the service role and returns the new id.
func mustInsert(t *testing.T, x *sqlite.Executor, table string, row types.Row) string {
	t.Helper()
	id, err := x.Insert(types.Service(), table, row)
	if err != nil {
		t.Fatalf("Insert into %s: %v", table, err)
	}
	return id
}

// mustInsertAs inserts a row under the given subject.
func mustInsertAs(t *testing.T, x *sqlite.Executor, sub types.Subject, table string, row types.Row) {
	t.Helper()
	if _, err := x.Insert(sub, table, row); err != nil {
		t.Fatalf("Insert into %s as %s: %v", table, sub.Role, err)
	}
}

// newCountry builds a minimal valid country row.
func newCountry(iso2, name, continent string) types.Row {
	return types.Row{
		"iso2":                  iso2,
		"name":                  name,
		"capital":               name + " City",
		"continent":             continent,
		"primary_language":      "English",
		"primary_language_code": "EN",
		"primary_currency":      "Euro",
		"primary_currency_code": "EUR",
	}
}

func asUser(id string) types.Subject {
	return types.Subject{ID: id, Role: types.RoleAuthenticated}
}
