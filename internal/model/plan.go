package model

import "fmt"

// BatchPlan is the in-memory description of one scrape batch prior to
// submission. A campaign maps to one or more plans depending on how many
// queries its targets expand into; all plans of one campaign share the
// campaign's base name so downstream systems can correlate them.
type BatchPlan struct {
	// Name is the display name sent to the dashboard at creation time.
	// It carries a " Part N" suffix only when the campaign spans multiple
	// plans.
	Name string

	// Queries is the ordered slice of this plan's scrape queries.
	Queries []string

	// TargetRegions is the distinct region codes across all of the
	// campaign's targets. Submission metadata only.
	TargetRegions []string

	// SourceCampaignID links the plan back to the registry campaign.
	SourceCampaignID int64
}

// PartName returns the display name for plan index i (0-based) out of total.
// Single-plan campaigns keep the bare base name; multi-plan campaigns get a
// 1-indexed suffix so operators can tell the parts apart at creation time.
func PartName(base string, i, total int) string {
	if total <= 1 {
		return base
	}
	return fmt.Sprintf("%s Part %d", base, i+1)
}
