package types

// Continent values accepted on country rows.
const (
	ContinentEurope       = "Europe"
	ContinentAsia         = "Asia"
	ContinentAfrica       = "Africa"
	ContinentOceania      = "Oceania"
	ContinentNorthAmerica = "North America"
	ContinentSouthAmerica = "South America"
)

// Continents lists every valid continent value.
var Continents = []string{
	ContinentEurope,
	ContinentAsia,
	ContinentAfrica,
	ContinentOceania,
	ContinentNorthAmerica,
	ContinentSouthAmerica,
}

// Country is a reference-data row describing one country. Code fields
// (iso2, language, currency) are stored uppercase; iso2 is unique.
type Country struct {
	ID                  string `json:"id"`
	Iso2                string `json:"iso2"`
	Name                string `json:"name"`
	Capital             string `json:"capital"`
	Continent           string `json:"continent"`
	PrimaryLanguage     string `json:"primary_language"`
	PrimaryLanguageCode string `json:"primary_language_code"`
	PrimaryCurrency     string `json:"primary_currency"`
	PrimaryCurrencyCode string `json:"primary_currency_code"`
	FlagFullPath        string `json:"flag_full_path"`
	BackgroundHex       string `json:"background_hex"`
}

// Row converts the country to a storage row.
func (c *Country) Row() Row {
	return Row{
		"id":                    c.ID,
		"iso2":                  c.Iso2,
		"name":                  c.Name,
		"capital":               c.Capital,
		"continent":             c.Continent,
		"primary_language":      c.PrimaryLanguage,
		"primary_language_code": c.PrimaryLanguageCode,
		"primary_currency":      c.PrimaryCurrency,
		"primary_currency_code": c.PrimaryCurrencyCode,
		"flag_full_path":        c.FlagFullPath,
		"background_hex":        c.BackgroundHex,
	}
}

// CountryFromRow builds a Country from a storage row.
func CountryFromRow(r Row) *Country {
	return &Country{
		ID:                  rowString(r, "id"),
		Iso2:                rowString(r, "iso2"),
		Name:                rowString(r, "name"),
		Capital:             rowString(r, "capital"),
		Continent:           rowString(r, "continent"),
		PrimaryLanguage:     rowString(r, "primary_language"),
		PrimaryLanguageCode: rowString(r, "primary_language_code"),
		PrimaryCurrency:     rowString(r, "primary_currency"),
		PrimaryCurrencyCode: rowString(r, "primary_currency_code"),
		FlagFullPath:        rowString(r, "flag_full_path"),
		BackgroundHex:       rowString(r, "background_hex"),
	}
}

// CountryOverview is a one-to-many child of Country holding narrative text.
type CountryOverview struct {
	ID           string `json:"id"`
	CountryID    string `json:"country_id"`
	Body         string `json:"body"`
	WikipediaURL string `json:"wikipedia_url"`
}

// Row converts the overview to a storage row.
func (o *CountryOverview) Row() Row {
	return Row{
		"id":            o.ID,
		"country_id":    o.CountryID,
		"body":          o.Body,
		"wikipedia_url": o.WikipediaURL,
	}
}

// CountryBestTime describes a recommended season for visiting a country.
type CountryBestTime struct {
	ID          string `json:"id"`
	CountryID   string `json:"country_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Row converts the best-time entry to a storage row.
func (b *CountryBestTime) Row() Row {
	return Row{
		"id":          b.ID,
		"country_id":  b.CountryID,
		"title":       b.Title,
		"description": b.Description,
	}
}

// CountryAiSuggest holds a generated suggestion text for a country together
// with the prompt that produced it.
type CountryAiSuggest struct {
	ID          string `json:"id"`
	CountryID   string `json:"country_id"`
	SuggestText string `json:"suggest_text"`
	Prompt      string `json:"prompt"`
}

// Row converts the suggestion to a storage row.
func (s *CountryAiSuggest) Row() Row {
	return Row{
		"id":           s.ID,
		"country_id":   s.CountryID,
		"suggest_text": s.SuggestText,
		"prompt":       s.Prompt,
	}
}

// CountryPodcast references a generated podcast episode for a country.
// AudioFullPath points into object storage under the private/ prefix.
type CountryPodcast struct {
	ID            string `json:"id"`
	CountryID     string `json:"country_id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	AudioFullPath string `json:"audio_full_path"`
	DurationSec   int64  `json:"duration_sec"`
}

// Row converts the podcast to a storage row.
func (p *CountryPodcast) Row() Row {
	return Row{
		"id":              p.ID,
		"country_id":      p.CountryID,
		"title":           p.Title,
		"subtitle":        p.Subtitle,
		"audio_full_path": p.AudioFullPath,
		"duration_sec":    p.DurationSec,
	}
}

// CountryPodcastFromRow builds a CountryPodcast from a storage row.
func CountryPodcastFromRow(r Row) *CountryPodcast {
	return &CountryPodcast{
		ID:            rowString(r, "id"),
		CountryID:     rowString(r, "country_id"),
		Title:         rowString(r, "title"),
		Subtitle:      rowString(r, "subtitle"),
		AudioFullPath: rowString(r, "audio_full_path"),
		DurationSec:   rowInt(r, "duration_sec"),
	}
}
