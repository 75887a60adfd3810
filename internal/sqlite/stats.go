package sqlite

import (
	"fmt"
	"math"

	"github.com/voyagerhq/voyager/pkg/types"
)

// Stats recomputes the per-user travel statistics from current base-table
// state. Nothing is cached: every call joins the user's visits against
// the countries table, so concurrent mutations committed before the read
// are always reflected. Only the owning subject or the service role may
// read a user's stats.
func (x *Executor) Stats(sub types.Subject, userID string) (types.TravelStats, error) {
	x.backend.mu.RLock()
	defer x.backend.mu.RUnlock()

	var stats types.TravelStats
	if !x.backend.attached {
		return stats, types.ErrStoreDetached
	}
	// The aggregate is derived from the user's visit rows, so it carries
	// their ownership policy.
	ownerRow := types.Row{"user_id": userID}
	if err := x.engine.Authorize(sub, types.ActionSelect, types.TableCountriesVisited, ownerRow); err != nil {
		return stats, err
	}

	var total int64
	if err := x.backend.db.QueryRow("SELECT COUNT(*) FROM countries").Scan(&total); err != nil {
		return stats, fmt.Errorf("counting countries: %w", err)
	}

	err := x.backend.db.QueryRow(`
		SELECT COUNT(DISTINCT cv.country_id), COUNT(DISTINCT c.continent)
		FROM countries_visited cv
		JOIN countries c ON c.id = cv.country_id
		WHERE cv.user_id = ?`, userID).
		Scan(&stats.CountriesVisited, &stats.ContinentsVisited)
	if err != nil {
		return stats, fmt.Errorf("aggregating visits: %w", err)
	}

	// Null-guarded division: an empty countries table yields no
	// percentage rather than an error.
	if total > 0 {
		pct := math.Round(100*float64(stats.CountriesVisited)/float64(total)*10) / 10
		stats.WorldExploredPercent = &pct
	}
	return stats, nil
}
