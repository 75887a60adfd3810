package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/voyagerhq/voyager/pkg/types"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// countryByIso2 resolves a country row by its ISO2 code for the acting
// subject.
func countryByIso2(sub types.Subject, iso2 string) (types.Row, error) {
	rows, err := exec.Select(sub, types.TableCountries, types.Row{"iso2": iso2})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: country %s", types.ErrNotFound, iso2)
	}
	return rows[0], nil
}

// ensureProfile creates the acting user's profile row if it does not
// exist yet. Safe to call repeatedly.
func ensureProfile(sub types.Subject) error {
	profile := &types.UserProfile{ID: sub.ID}
	_, err := exec.Insert(sub, types.TableProfiles, profile.Row())
	if errors.Is(err, types.ErrUniqueViolation) {
		return nil
	}
	return err
}
