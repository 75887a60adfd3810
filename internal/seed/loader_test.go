package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagerhq/voyager/internal/policy"
	"github.com/voyagerhq/voyager/internal/sqlite"
	"github.com/voyagerhq/voyager/pkg/types"
)

func newSeedExecutor(t *testing.T) *sqlite.Executor {
	t.Helper()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { b.Detach() })
	return sqlite.NewExecutor(b, policy.Default())
}

func writeFeed(t *testing.T, dir, table string, lines ...string) {
	t.Helper()
	var data []byte
	for _, line := range lines {
		data = append(data, line...)
		data = append(data, '\n')
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, table+".jsonl"), data, 0o644))
}

const (
	countryFR = `{"id":"c-fr","iso2":"FR","name":"France","capital":"Paris","continent":"Europe","primary_language":"French","primary_language_code":"FR","primary_currency":"Euro","primary_currency_code":"EUR"}`
	countryJP = `{"id":"c-jp","iso2":"JP","name":"Japan","capital":"Tokyo","continent":"Asia","primary_language":"Japanese","primary_language_code":"JA","primary_currency":"Yen","primary_currency_code":"JPY"}`
)

func TestLoaderRun(t *testing.T) {
	x := newSeedExecutor(t)
	dir := t.TempDir()

	writeFeed(t, dir, types.TableCountries, countryFR, countryJP)
	writeFeed(t, dir, types.TableVibeCategories, `{"id":"vc-1","title":"Food"}`)
	writeFeed(t, dir, types.TableVibes, `{"id":"v-1","category_id":"vc-1","title":"Street Eats"}`)
	writeFeed(t, dir, types.TableVibesCountry, `{"country_id":"c-jp","vibe_id":"v-1"}`)

	n, err := NewLoader(x).Run(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	rows, err := x.Select(types.Service(), types.TableCountries, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Columns absent from the feed pick up their declared defaults.
	assert.Equal(t, "#FFFFFF", rows[0]["background_hex"])

	rows, err = x.Select(types.Service(), types.TableVibesCountry, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLoaderSkipsMissingFiles(t *testing.T) {
	x := newSeedExecutor(t)
	dir := t.TempDir()

	writeFeed(t, dir, types.TableVibeCategories, `{"id":"vc-1","title":"Food"}`)

	n, err := NewLoader(x).Run(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoaderRejectsMalformedLine(t *testing.T) {
	x := newSeedExecutor(t)
	dir := t.TempDir()

	writeFeed(t, dir, types.TableCountries, countryFR, `{"id": not json`)

	_, err := NewLoader(x).Run(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed JSON")
}

func TestLoaderStopsOnConstraintViolation(t *testing.T) {
	x := newSeedExecutor(t)
	dir := t.TempDir()

	// Second row duplicates the first's iso2; the run aborts there.
	writeFeed(t, dir, types.TableCountries, countryFR,
		`{"id":"c-fr2","iso2":"FR","name":"France 2","capital":"Paris","continent":"Europe","primary_language":"French","primary_language_code":"FR","primary_currency":"Euro","primary_currency_code":"EUR"}`)

	n, err := NewLoader(x).Run(dir)
	require.ErrorIs(t, err, types.ErrUniqueViolation)
	assert.Equal(t, 1, n, "rows before the violation stay loaded")

	rows, err := x.Select(types.Service(), types.TableCountries, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportRoundTrip(t *testing.T) {
	src := newSeedExecutor(t)
	dir := t.TempDir()

	writeFeed(t, dir, types.TableCountries, countryFR, countryJP)
	writeFeed(t, dir, types.TableVibeCategories, `{"id":"vc-1","title":"Food"}`)
	writeFeed(t, dir, types.TableVibes, `{"id":"v-1","category_id":"vc-1","title":"Street Eats"}`)
	_, err := NewLoader(src).Run(dir)
	require.NoError(t, err)

	// Export the loaded state and feed it into a fresh store.
	exportDir := t.TempDir()
	require.NoError(t, Export(src, exportDir))

	dst := newSeedExecutor(t)
	n, err := NewLoader(dst).Run(exportDir)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	rows, err := dst.Select(types.Service(), types.TableCountries, types.Row{"iso2": "JP"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Japan", rows[0]["name"])
}
