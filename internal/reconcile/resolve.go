// Package reconcile plans and submits scrape batches for campaigns that have
// no existing work in the tracker.
package reconcile

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/sells-group/recycling-sync/internal/model"
)

// ResolveTargets normalizes the raw target rows of one campaign: rows whose
// city name denotes a county-level region are dropped, case-insensitive
// duplicate city+region pairs collapse (first occurrence wins), and the
// result is sorted by city name so query ordering is deterministic.
func ResolveTargets(raw []model.GeoTarget) []model.GeoTarget {
	fold := cases.Fold()

	seen := make(map[string]bool, len(raw))
	targets := make([]model.GeoTarget, 0, len(raw))
	for _, t := range raw {
		city := fold.String(t.CityName)
		if strings.Contains(city, "county") {
			continue
		}
		key := city + "|" + fold.String(t.RegionCode)
		if seen[key] {
			continue
		}
		seen[key] = true
		targets = append(targets, t)
	}

	slices.SortStableFunc(targets, func(a, b model.GeoTarget) int {
		if c := strings.Compare(fold.String(a.CityName), fold.String(b.CityName)); c != 0 {
			return c
		}
		return strings.Compare(a.RegionCode, b.RegionCode)
	})
	return targets
}
