package types

// TravelStats is the per-user derived view. It has no stored state: the
// executor recomputes it from the base tables on every read.
// WorldExploredPercent is nil when the countries table is empty
// (null-guarded division), otherwise 100*visited/total rounded to one
// decimal place.
type TravelStats struct {
	CountriesVisited     int64    `json:"countries_visited"`
	ContinentsVisited    int64    `json:"continents_visited"`
	WorldExploredPercent *float64 `json:"world_explored_percent"`
}
