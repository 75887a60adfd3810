package types

// UserProfile mirrors an identity owned by the external authentication
// subsystem. The profile id is the subject id; ownership-scoped tables
// reference it.
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Row converts the profile to a storage row.
func (p *UserProfile) Row() Row {
	return Row{"id": p.ID, "username": p.Username}
}

// UserProfileFromRow builds a UserProfile from a storage row.
func UserProfileFromRow(r Row) *UserProfile {
	return &UserProfile{ID: rowString(r, "id"), Username: rowString(r, "username")}
}

// CountryVisited records one user's visit to one country (composite
// primary key, owned by the user).
type CountryVisited struct {
	UserID    string `json:"user_id"`
	CountryID string `json:"country_id"`
}

// Row converts the visit to a storage row.
func (cv *CountryVisited) Row() Row {
	return Row{"user_id": cv.UserID, "country_id": cv.CountryID}
}

// VibeUser records one user-selected vibe (composite primary key, owned by
// the user).
type VibeUser struct {
	UserID string `json:"user_id"`
	VibeID string `json:"vibe_id"`
}

// Row converts the selection to a storage row.
func (vu *VibeUser) Row() Row {
	return Row{"user_id": vu.UserID, "vibe_id": vu.VibeID}
}
