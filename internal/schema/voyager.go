package schema

import "github.com/voyagerhq/voyager/pkg/types"

// Default returns the voyager schema registry: reference data (countries,
// vibes and their links), ownership-scoped user tables, and the
// per-country child tables. Relationship on-delete behavior is declared
// here, once, and applied by the integrity manager.
func Default() *Registry {
	return NewRegistry(
		countriesTable(),
		vibeCategoriesTable(),
		vibesTable(),
		vibesCountryTable(),
		profilesTable(),
		countriesVisitedTable(),
		vibesUsersTable(),
		countryOverviewTable(),
		countryBestTimesTable(),
		countryAiSuggestsTable(),
		countryPodcastsTable(),
	)
}

func countriesTable() *Table {
	return &Table{
		Name: types.TableCountries,
		Columns: []Column{
			{Name: "id", Type: TypeText},
			{Name: "iso2", Type: TypeText, Check: CheckAll(CheckLength("iso2", 2), CheckUppercase("iso2"))},
			{Name: "name", Type: TypeText},
			{Name: "capital", Type: TypeText},
			{Name: "continent", Type: TypeText, Check: CheckEnum("continent", types.Continents)},
			{Name: "primary_language", Type: TypeText},
			{Name: "primary_language_code", Type: TypeText, Check: CheckUppercase("primary_language_code")},
			{Name: "primary_currency", Type: TypeText},
			{Name: "primary_currency_code", Type: TypeText, Check: CheckUppercase("primary_currency_code")},
			{Name: "flag_full_path", Type: TypeText, Default: ""},
			{Name: "background_hex", Type: TypeText, Default: "#FFFFFF"},
		},
		PrimaryKey: []string{"id"},
		Uniques:    [][]string{{"iso2"}},
	}
}

func vibeCategoriesTable() *Table {
	return &Table{
		Name: types.TableVibeCategories,
		Columns: []Column{
			{Name: "id", Type: TypeText},
			{Name: "title", Type: TypeText},
		},
		PrimaryKey: []string{"id"},
		Uniques:    [][]string{{"title"}},
	}
}

func vibesTable() *Table {
	return &Table{
		Name: types.TableVibes,
		Columns: []Column{
			{Name: "id", Type: TypeText},
			{Name: "category_id", Type: TypeText},
			{Name: "title", Type: TypeText},
			{Name: "icon_emoji", Type: TypeText, Default: ""},
		},
		PrimaryKey: []string{"id"},
		Uniques:    [][]string{{"category_id", "title"}},
		ForeignKeys: []ForeignKey{
			{Column: "category_id", RefTable: types.TableVibeCategories, RefColumn: "id", OnDelete: Restrict},
		},
	}
}

func vibesCountryTable() *Table {
	return &Table{
		Name: types.TableVibesCountry,
		Columns: []Column{
			{Name: "country_id", Type: TypeText},
			{Name: "vibe_id", Type: TypeText},
		},
		PrimaryKey: []string{"country_id", "vibe_id"},
		ForeignKeys: []ForeignKey{
			{Column: "country_id", RefTable: types.TableCountries, RefColumn: "id", OnDelete: Cascade},
			{Column: "vibe_id", RefTable: types.TableVibes, RefColumn: "id", OnDelete: Restrict},
		},
	}
}

func profilesTable() *Table {
	return &Table{
		Name: types.TableProfiles,
		Columns: []Column{
			{Name: "id", Type: TypeText},
			{Name: "username", Type: TypeText, Default: ""},
		},
		PrimaryKey: []string{"id"},
	}
}

func countriesVisitedTable() *Table {
	return &Table{
		Name: types.TableCountriesVisited,
		Columns: []Column{
			{Name: "user_id", Type: TypeText},
			{Name: "country_id", Type: TypeText},
		},
		PrimaryKey: []string{"user_id", "country_id"},
		ForeignKeys: []ForeignKey{
			{Column: "user_id", RefTable: types.TableProfiles, RefColumn: "id", OnDelete: Cascade},
			{Column: "country_id", RefTable: types.TableCountries, RefColumn: "id", OnDelete: Restrict},
		},
	}
}

func vibesUsersTable() *Table {
	return &Table{
		Name: types.TableVibesUsers,
		Columns: []Column{
			{Name: "user_id", Type: TypeText},
			{Name: "vibe_id", Type: TypeText},
		},
		PrimaryKey: []string{"user_id", "vibe_id"},
		ForeignKeys: []ForeignKey{
			{Column: "user_id", RefTable: types.TableProfiles, RefColumn: "id", OnDelete: Cascade},
			{Column: "vibe_id", RefTable: types.TableVibes, RefColumn: "id", OnDelete: Restrict},
		},
	}
}

func countryOverviewTable() *Table {
	return &Table{
		Name: types.TableCountryOverview,
		Columns: []Column{
			{Name: "id", Type: TypeText},
			{Name: "country_id", Type: TypeText},
			{Name: "body", Type: TypeText},
			{Name: "wikipedia_url", Type: TypeText, Default: ""},
		},
		PrimaryKey: []string{"id"},
		ForeignKeys: []ForeignKey{
			{Column: "country_id", RefTable: types.TableCountries, RefColumn: "id", OnDelete: Cascade},
		},
	}
}

func countryBestTimesTable() *Table {
	return &Table{
		Name: types.TableCountryBestTimes,
		Columns: []Column{
			{Name: "id", Type: TypeText},
			{Name: "country_id", Type: TypeText},
			{Name: "title", Type: TypeText},
			{Name: "description", Type: TypeText, Default: ""},
		},
		PrimaryKey: []string{"id"},
		ForeignKeys: []ForeignKey{
			{Column: "country_id", RefTable: types.TableCountries, RefColumn: "id", OnDelete: Cascade},
		},
	}
}

func countryAiSuggestsTable() *Table {
	return &Table{
		Name: types.TableCountryAiSuggest,
		Columns: []Column{
			{Name: "id", Type: TypeText},
			{Name: "country_id", Type: TypeText},
			{Name: "suggest_text", Type: TypeText},
			{Name: "prompt", Type: TypeText, Default: ""},
		},
		PrimaryKey: []string{"id"},
		ForeignKeys: []ForeignKey{
			{Column: "country_id", RefTable: types.TableCountries, RefColumn: "id", OnDelete: Cascade},
		},
	}
}

func countryPodcastsTable() *Table {
	return &Table{
		Name: types.TableCountryPodcasts,
		Columns: []Column{
			{Name: "id", Type: TypeText},
			{Name: "country_id", Type: TypeText},
			{Name: "title", Type: TypeText},
			{Name: "subtitle", Type: TypeText, Default: ""},
			{Name: "audio_full_path", Type: TypeText, Default: ""},
			{Name: "duration_sec", Type: TypeInteger, Default: int64(0), Check: CheckNonNegative("duration_sec")},
		},
		PrimaryKey: []string{"id"},
		ForeignKeys: []ForeignKey{
			{Column: "country_id", RefTable: types.TableCountries, RefColumn: "id", OnDelete: Cascade},
		},
	}
}
