// Package registry reads campaigns and their geographic targets from the
// lead-recycling registry database.
package registry

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/recycling-sync/internal/db"
	"github.com/sells-group/recycling-sync/internal/model"
)

// FamilyMarker is the naming-convention substring that identifies campaigns
// belonging to the Google Maps scrape family.
const FamilyMarker = "(GMaps)"

// Store reads from the registry database. All methods are read-only; the
// registry is never mutated by a reconciliation run.
type Store struct {
	pool    db.Pool
	closeFn func()
}

// New connects to the registry database and verifies the connection.
func New(ctx context.Context, connString string) (*Store, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "registry: parse config")
	}
	pgxCfg.MaxConns = 4
	pgxCfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "registry: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "registry: ping")
	}
	return &Store{pool: pool, closeFn: pool.Close}, nil
}

// Close releases the connection pool. Safe to call once per Store.
func (s *Store) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// ActiveCampaigns returns all active campaigns in the scrape family, ordered
// by id ascending for deterministic runs. The result set is assumed bounded;
// there is no pagination.
func (s *Store) ActiveCampaigns(ctx context.Context) ([]model.Campaign, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name FROM campaigns WHERE active = true AND name LIKE '%' || $1 || '%' ORDER BY id`,
		FamilyMarker,
	)
	if err != nil {
		return nil, eris.Wrap(err, "registry: query active campaigns")
	}
	defer rows.Close()

	var campaigns []model.Campaign
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, eris.Wrap(err, "registry: scan campaign")
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "registry: iterate campaigns")
	}
	return campaigns, nil
}

// AssignedCities returns the raw rows of the first-class per-campaign target
// assignment table. County filtering, dedup, and ordering happen in the
// resolver, not here.
func (s *Store) AssignedCities(ctx context.Context, campaignID int64) ([]model.GeoTarget, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT city_name, region_code FROM campaign_cities WHERE campaign_id = $1`,
		campaignID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: query assigned cities for campaign %d", campaignID)
	}
	defer rows.Close()
	return scanTargets(rows)
}

// ClaimedCities returns the raw rows of the legacy ownership-claim table,
// joined through the campaign's owning client. Consulted only when the
// assignment table yields zero rows for the campaign.
func (s *Store) ClaimedCities(ctx context.Context, campaignID int64) ([]model.GeoTarget, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT cc.city_name, cc.region_code
		 FROM client_city_claims cc
		 JOIN campaigns c ON c.client_id = cc.client_id
		 WHERE c.id = $1`,
		campaignID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: query claimed cities for campaign %d", campaignID)
	}
	defer rows.Close()
	return scanTargets(rows)
}

type targetRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTargets(rows targetRows) ([]model.GeoTarget, error) {
	var targets []model.GeoTarget
	for rows.Next() {
		var t model.GeoTarget
		if err := rows.Scan(&t.CityName, &t.RegionCode); err != nil {
			return nil, eris.Wrap(err, "registry: scan target")
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "registry: iterate targets")
	}
	return targets, nil
}
