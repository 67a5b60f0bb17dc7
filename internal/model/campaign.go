// Package model defines the domain types shared across a reconciliation run.
package model

import "fmt"

// Campaign is an active lead-recycling campaign read from the registry store.
// Campaigns are read-only inputs for the lifetime of a run.
type Campaign struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GeoTarget is a city+region pair a campaign is configured to cover.
type GeoTarget struct {
	CityName   string `json:"city_name"`
	RegionCode string `json:"region_code"`
}

// Query renders the atomic scrape unit for one category in this target,
// e.g. "Dentist in Austin, TX".
func (t GeoTarget) Query(category string) string {
	return fmt.Sprintf("%s in %s, %s", category, t.CityName, t.RegionCode)
}
