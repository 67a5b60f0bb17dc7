package registry

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/recycling-sync/internal/model"
)

// newMockStore creates a Store backed by pgxmock for unit testing.
func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &Store{pool: mock}
	return s, mock
}

func TestActiveCampaigns(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, name FROM campaigns WHERE active = true AND name LIKE .+ ORDER BY id`).
		WithArgs(FamilyMarker).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(7), "Acme (GMaps)").
			AddRow(int64(12), "Globex (GMaps)"))

	campaigns, err := s.ActiveCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Campaign{
		{ID: 7, Name: "Acme (GMaps)"},
		{ID: 12, Name: "Globex (GMaps)"},
	}, campaigns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveCampaignsEmpty(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, name FROM campaigns`).
		WithArgs(FamilyMarker).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	campaigns, err := s.ActiveCampaigns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, campaigns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveCampaignsQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, name FROM campaigns`).
		WithArgs(FamilyMarker).
		WillReturnError(assert.AnError)

	_, err := s.ActiveCampaigns(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query active campaigns")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignedCities(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT city_name, region_code FROM campaign_cities WHERE campaign_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"city_name", "region_code"}).
			AddRow("Austin", "TX").
			AddRow("Travis County", "TX"))

	targets, err := s.AssignedCities(context.Background(), 7)
	require.NoError(t, err)
	// Raw rows: county filtering belongs to the resolver, not the store.
	assert.Equal(t, []model.GeoTarget{
		{CityName: "Austin", RegionCode: "TX"},
		{CityName: "Travis County", RegionCode: "TX"},
	}, targets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimedCitiesJoinsThroughClient(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT cc.city_name, cc.region_code\s+FROM client_city_claims cc\s+JOIN campaigns c ON c.client_id = cc.client_id\s+WHERE c.id = \$1`).
		WithArgs(int64(12)).
		WillReturnRows(pgxmock.NewRows([]string{"city_name", "region_code"}).
			AddRow("Tulsa", "OK"))

	targets, err := s.ClaimedCities(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, []model.GeoTarget{{CityName: "Tulsa", RegionCode: "OK"}}, targets)
	assert.NoError(t, mock.ExpectationsWereMet())
}
