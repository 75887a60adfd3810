package migrate

// The voyager migration set. Versions are timestamps; the Sequencer
// applies them in this order and refuses anything else.
//
// Unit 20250520143000 replaces the flag column: the drop and the add are
// two ordered steps inside one unit, so either both happen or neither.

const createCountries = `CREATE TABLE countries (
    id TEXT PRIMARY KEY,
    iso2 TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    capital TEXT NOT NULL,
    continent TEXT NOT NULL,
    primary_language TEXT NOT NULL,
    primary_language_code TEXT NOT NULL,
    primary_currency TEXT NOT NULL,
    primary_currency_code TEXT NOT NULL,
    flag_emoji TEXT NOT NULL DEFAULT ''
);`

const createVibeCategories = `CREATE TABLE vibe_categories (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL UNIQUE
);`

const createVibes = `CREATE TABLE vibes (
    id TEXT PRIMARY KEY,
    category_id TEXT NOT NULL,
    title TEXT NOT NULL,
    icon_emoji TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (category_id) REFERENCES vibe_categories(id)
);`

const createVibesCountry = `CREATE TABLE vibes_country (
    country_id TEXT NOT NULL,
    vibe_id TEXT NOT NULL,
    PRIMARY KEY (country_id, vibe_id),
    FOREIGN KEY (country_id) REFERENCES countries(id),
    FOREIGN KEY (vibe_id) REFERENCES vibes(id)
);`

const createProfiles = `CREATE TABLE profiles (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL DEFAULT ''
);`

const createCountriesVisited = `CREATE TABLE countries_visited (
    user_id TEXT NOT NULL,
    country_id TEXT NOT NULL,
    PRIMARY KEY (user_id, country_id),
    FOREIGN KEY (user_id) REFERENCES profiles(id),
    FOREIGN KEY (country_id) REFERENCES countries(id)
);`

const createVibesUsers = `CREATE TABLE vibes_users (
    user_id TEXT NOT NULL,
    vibe_id TEXT NOT NULL,
    PRIMARY KEY (user_id, vibe_id),
    FOREIGN KEY (user_id) REFERENCES profiles(id),
    FOREIGN KEY (vibe_id) REFERENCES vibes(id)
);`

const createCountryOverview = `CREATE TABLE country_overview (
    id TEXT PRIMARY KEY,
    country_id TEXT NOT NULL,
    body TEXT NOT NULL,
    wikipedia_url TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (country_id) REFERENCES countries(id)
);`

const createCountryBestTimes = `CREATE TABLE country_best_times (
    id TEXT PRIMARY KEY,
    country_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (country_id) REFERENCES countries(id)
);`

const createCountryAiSuggests = `CREATE TABLE country_ai_suggests (
    id TEXT PRIMARY KEY,
    country_id TEXT NOT NULL,
    suggest_text TEXT NOT NULL,
    prompt TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (country_id) REFERENCES countries(id)
);`

const createCountryPodcasts = `CREATE TABLE country_podcasts (
    id TEXT PRIMARY KEY,
    country_id TEXT NOT NULL,
    title TEXT NOT NULL,
    subtitle TEXT NOT NULL DEFAULT '',
    audio_full_path TEXT NOT NULL DEFAULT '',
    duration_sec INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (country_id) REFERENCES countries(id)
);`

// All returns the complete voyager migration sequence.
func All() []Migration {
	return []Migration{
		{
			Version: "20250301090000",
			Name:    "create_countries",
			Steps: []string{
				createCountries,
				`CREATE INDEX idx_countries_continent ON countries(continent);`,
			},
		},
		{
			Version: "20250301090500",
			Name:    "create_vibes",
			Steps: []string{
				createVibeCategories,
				createVibes,
				`CREATE UNIQUE INDEX idx_vibes_category_title ON vibes(category_id, title);`,
				createVibesCountry,
			},
		},
		{
			Version: "20250301091000",
			Name:    "create_user_links",
			Steps: []string{
				createProfiles,
				createCountriesVisited,
				createVibesUsers,
			},
		},
		{
			Version: "20250301091500",
			Name:    "create_country_children",
			Steps: []string{
				createCountryOverview,
				createCountryBestTimes,
				createCountryAiSuggests,
				createCountryPodcasts,
				`CREATE INDEX idx_country_podcasts_country ON country_podcasts(country_id);`,
			},
		},
		{
			// Additive column with a default for existing rows.
			Version: "20250412100000",
			Name:    "add_background_hex",
			Steps: []string{
				`ALTER TABLE countries ADD COLUMN background_hex TEXT NOT NULL DEFAULT '#FFFFFF';`,
			},
		},
		{
			// Drop-and-replace of the flag reference field: two ordered
			// steps in one atomic unit.
			Version: "20250520143000",
			Name:    "replace_flag_column",
			Steps: []string{
				`ALTER TABLE countries DROP COLUMN flag_emoji;`,
				`ALTER TABLE countries ADD COLUMN flag_full_path TEXT NOT NULL DEFAULT '';`,
			},
		},
	}
}
