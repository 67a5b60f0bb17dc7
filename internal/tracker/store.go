// Package tracker accesses the lead-gen scrape tracker database: the
// existing-work check that keeps re-runs idempotent and the post-submission
// display-name correction for multi-part batches.
package tracker

import (
	"context"

	"github.com/rotisserie/eris"
)

// Store is the tracker persistence surface the reconciler needs.
type Store interface {
	// ExistingBatchCount counts batches already tied to a campaign by any
	// of: the lead_recycling_campaign_id link, exact campaign_name match,
	// or a name prefix match on the base name (covers legacy batches
	// created before the link column existed and multi-part names).
	ExistingBatchCount(ctx context.Context, campaignID int64, baseName string) (int, error)

	// UpdateBatchName rewrites a batch's stored display name by its
	// opaque id.
	UpdateBatchName(ctx context.Context, batchID, name string) error

	Close() error
}

// Open creates a Store for the configured driver. SQLite is used for local
// runs against a scratch tracker; production points at the dashboard's
// Postgres.
func Open(ctx context.Context, driver, connString string) (Store, error) {
	switch driver {
	case "postgres":
		return NewPostgres(ctx, connString)
	case "sqlite":
		return NewSQLite(ctx, connString)
	default:
		return nil, eris.Errorf("tracker: unknown driver %q (valid: postgres, sqlite)", driver)
	}
}
