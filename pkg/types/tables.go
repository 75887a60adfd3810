package types

// Table names. These match the SQLite table names created by the
// migration set.
const (
	TableCountries        = "countries"
	TableVibeCategories   = "vibe_categories"
	TableVibes            = "vibes"
	TableVibesCountry     = "vibes_country"
	TableProfiles         = "profiles"
	TableCountriesVisited = "countries_visited"
	TableVibesUsers       = "vibes_users"
	TableCountryOverview  = "country_overview"
	TableCountryBestTimes = "country_best_times"
	TableCountryAiSuggest = "country_ai_suggests"
	TableCountryPodcasts  = "country_podcasts"
)

// Row is a generic table row keyed by column name. Values are the
// storage-level representations: string, int64, float64, or nil.
type Row map[string]any

// rowString reads a string column, tolerating nil.
func rowString(r Row, col string) string {
	if v, ok := r[col].(string); ok {
		return v
	}
	return ""
}

// rowInt reads an integer column, tolerating the numeric widths that
// database/sql and encoding/json produce.
func rowInt(r Row, col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
