package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/recycling-sync/internal/model"
)

func TestResolveTargetsFiltersCounties(t *testing.T) {
	raw := []model.GeoTarget{
		{CityName: "Austin", RegionCode: "TX"},
		{CityName: "Travis County", RegionCode: "TX"},
		{CityName: "WASHINGTON COUNTY", RegionCode: "OR"},
		{CityName: "county line", RegionCode: "FL"},
	}

	resolved := ResolveTargets(raw)
	assert.Equal(t, []model.GeoTarget{{CityName: "Austin", RegionCode: "TX"}}, resolved)
}

func TestResolveTargetsCollapsesCaseInsensitiveDuplicates(t *testing.T) {
	raw := []model.GeoTarget{
		{CityName: "Austin", RegionCode: "TX"},
		{CityName: "AUSTIN", RegionCode: "TX"},
		{CityName: "austin", RegionCode: "tx"},
	}

	resolved := ResolveTargets(raw)
	// First occurrence wins.
	assert.Equal(t, []model.GeoTarget{{CityName: "Austin", RegionCode: "TX"}}, resolved)
}

func TestResolveTargetsKeepsSameCityInDifferentRegions(t *testing.T) {
	raw := []model.GeoTarget{
		{CityName: "Springfield", RegionCode: "MO"},
		{CityName: "Springfield", RegionCode: "IL"},
	}

	resolved := ResolveTargets(raw)
	assert.Len(t, resolved, 2)
}

func TestResolveTargetsSortsByCityName(t *testing.T) {
	raw := []model.GeoTarget{
		{CityName: "Waco", RegionCode: "TX"},
		{CityName: "austin", RegionCode: "TX"},
		{CityName: "Dallas", RegionCode: "TX"},
	}

	resolved := ResolveTargets(raw)
	assert.Equal(t, []model.GeoTarget{
		{CityName: "austin", RegionCode: "TX"},
		{CityName: "Dallas", RegionCode: "TX"},
		{CityName: "Waco", RegionCode: "TX"},
	}, resolved)
}

func TestResolveTargetsEmpty(t *testing.T) {
	assert.Empty(t, ResolveTargets(nil))
	assert.Empty(t, ResolveTargets([]model.GeoTarget{{CityName: "Orange County", RegionCode: "CA"}}))
}
