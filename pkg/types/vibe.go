package types

// VibeCategory groups vibes under a unique title.
type VibeCategory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Row converts the category to a storage row.
func (c *VibeCategory) Row() Row {
	return Row{"id": c.ID, "title": c.Title}
}

// VibeCategoryFromRow builds a VibeCategory from a storage row.
func VibeCategoryFromRow(r Row) *VibeCategory {
	return &VibeCategory{ID: rowString(r, "id"), Title: rowString(r, "title")}
}

// Vibe is a curated travel mood. Titles are unique within a category; the
// same title may appear under different categories.
type Vibe struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	IconEmoji  string `json:"icon_emoji"`
}

// Row converts the vibe to a storage row.
func (v *Vibe) Row() Row {
	return Row{
		"id":          v.ID,
		"category_id": v.CategoryID,
		"title":       v.Title,
		"icon_emoji":  v.IconEmoji,
	}
}

// VibeFromRow builds a Vibe from a storage row.
func VibeFromRow(r Row) *Vibe {
	return &Vibe{
		ID:         rowString(r, "id"),
		CategoryID: rowString(r, "category_id"),
		Title:      rowString(r, "title"),
		IconEmoji:  rowString(r, "icon_emoji"),
	}
}

// VibeCountry links a vibe to a country (composite primary key).
type VibeCountry struct {
	CountryID string `json:"country_id"`
	VibeID    string `json:"vibe_id"`
}

// Row converts the link to a storage row.
func (vc *VibeCountry) Row() Row {
	return Row{"country_id": vc.CountryID, "vibe_id": vc.VibeID}
}
