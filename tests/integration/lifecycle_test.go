package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagerhq/voyager/internal/policy"
	"github.com/voyagerhq/voyager/internal/seed"
	"github.com/voyagerhq/voyager/internal/sqlite"
	"github.com/voyagerhq/voyager/pkg/types"
)

// TestTravelTrackingLifecycle walks the whole flow: reference data goes in
// under the service role, a user signs up, visits countries, picks vibes,
// reads their stats, and finally deletes their account.
func TestTravelTrackingLifecycle(t *testing.T) {
	x, _ := setupStore(t)

	// Curate reference data.
	frID := mustInsert(t, x, types.TableCountries, newCountry("FR", "France", "Europe"))
	jpID := mustInsert(t, x, types.TableCountries, newCountry("JP", "Japan", "Asia"))
	mustInsert(t, x, types.TableCountries, newCountry("BR", "Brazil", "South America"))
	mustInsert(t, x, types.TableCountries, newCountry("KE", "Kenya", "Africa"))

	catID := mustInsert(t, x, types.TableVibeCategories, types.Row{"title": "Food"})
	vibeID := mustInsert(t, x, types.TableVibes, types.Row{
		"category_id": catID, "title": "Street Eats", "icon_emoji": "🍜",
	})
	mustInsert(t, x, types.TableVibesCountry, types.Row{"country_id": jpID, "vibe_id": vibeID})

	// A user signs up and starts tracking.
	user := asUser("traveler-1")
	mustInsertAs(t, x, user, types.TableProfiles, types.Row{"id": user.ID, "username": "wanderer"})
	mustInsertAs(t, x, user, types.TableCountriesVisited, types.Row{"user_id": user.ID, "country_id": frID})
	mustInsertAs(t, x, user, types.TableCountriesVisited, types.Row{"user_id": user.ID, "country_id": jpID})
	mustInsertAs(t, x, user, types.TableVibesUsers, types.Row{"user_id": user.ID, "vibe_id": vibeID})

	// Their stats reflect two of four countries across two continents.
	stats, err := x.Stats(user, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.CountriesVisited)
	assert.Equal(t, int64(2), stats.ContinentsVisited)
	require.NotNil(t, stats.WorldExploredPercent)
	assert.Equal(t, 50.0, *stats.WorldExploredPercent)

	// A visited country cannot be removed from the catalog.
	err = x.Delete(types.Service(), types.TableCountries, types.Row{"id": frID})
	require.ErrorIs(t, err, types.ErrForeignKeyViolation)

	// The user deletes their account; their tracked data goes with it.
	require.NoError(t, x.Delete(user, types.TableProfiles, types.Row{"id": user.ID}))
	rows, err := x.Select(types.Service(), types.TableCountriesVisited, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
	rows, err = x.Select(types.Service(), types.TableVibesUsers, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Now unreferenced, the country can be retired.
	require.NoError(t, x.Delete(types.Service(), types.TableCountries, types.Row{"id": frID}))
}

// TestDataSurvivesReattach verifies that a store keeps its data across a
// detach/attach cycle and that the migration sequence re-runs cleanly.
func TestDataSurvivesReattach(t *testing.T) {
	dir := t.TempDir()

	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{DataDir: dir}))
	x := sqlite.NewExecutor(b, policy.Default())
	countryID := mustInsert(t, x, types.TableCountries, newCountry("FR", "France", "Europe"))
	require.NoError(t, b.Detach())

	b2 := sqlite.NewBackend()
	require.NoError(t, b2.Attach(types.Config{DataDir: dir}))
	defer b2.Detach()
	x2 := sqlite.NewExecutor(b2, policy.Default())

	rows, err := x2.Select(types.Service(), types.TableCountries, types.Row{"id": countryID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "France", rows[0]["name"])
}

// TestSeedThenServe loads a seed feed and serves user requests over it.
func TestSeedThenServe(t *testing.T) {
	src, _ := setupStore(t)
	mustInsert(t, src, types.TableCountries, newCountry("FR", "France", "Europe"))
	mustInsert(t, src, types.TableCountries, newCountry("JP", "Japan", "Asia"))
	catID := mustInsert(t, src, types.TableVibeCategories, types.Row{"title": "Nature"})
	mustInsert(t, src, types.TableVibes, types.Row{"category_id": catID, "title": "Hiking"})

	feedDir := t.TempDir()
	require.NoError(t, seed.Export(src, feedDir))

	dst, _ := setupStore(t)
	n, err := seed.NewLoader(dst).Run(feedDir)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// An authenticated user browses the seeded catalog; an anonymous
	// request is still refused.
	rows, err := dst.Select(asUser("u1"), types.TableCountries, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = dst.Select(types.Anonymous(), types.TableCountries, nil)
	require.ErrorIs(t, err, types.ErrForbidden)
}
