package reconcile

import (
	"github.com/sells-group/recycling-sync/internal/model"
)

// MaxQueriesPerBatch bounds how many queries a single submitted batch may
// carry. A campaign whose expansion exceeds it is split into multiple plans,
// each but the last exactly at the bound.
const MaxQueriesPerBatch = 2000

// BuildPlans expands (target × category) into the full query list and slices
// it into submission-sized plans. Expansion is target-major: for each target
// all categories are emitted, in catalog order, before the next target. The
// output is fully determined by the inputs; partition boundaries depend on
// this ordering, so it must not change.
func BuildPlans(c model.Campaign, targets []model.GeoTarget, categories []string) []model.BatchPlan {
	total := len(targets) * len(categories)
	if total == 0 {
		return nil
	}

	queries := make([]string, 0, total)
	var regions []string
	seenRegion := make(map[string]bool, len(targets))
	for _, t := range targets {
		if !seenRegion[t.RegionCode] {
			seenRegion[t.RegionCode] = true
			regions = append(regions, t.RegionCode)
		}
		for _, category := range categories {
			queries = append(queries, t.Query(category))
		}
	}

	parts := (total + MaxQueriesPerBatch - 1) / MaxQueriesPerBatch
	plans := make([]model.BatchPlan, 0, parts)
	for i := 0; i < parts; i++ {
		lo := i * MaxQueriesPerBatch
		hi := min(lo+MaxQueriesPerBatch, total)
		plans = append(plans, model.BatchPlan{
			Name:             model.PartName(c.Name, i, parts),
			Queries:          queries[lo:hi],
			TargetRegions:    regions,
			SourceCampaignID: c.ID,
		})
	}
	return plans
}
