package tracker

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/recycling-sync/internal/db"
)

// PostgresStore implements Store against the dashboard's Postgres database.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// NewPostgres connects to the tracker database and verifies the connection.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "tracker: parse config")
	}
	pgxCfg.MaxConns = 4
	pgxCfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "tracker: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "tracker: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) ExistingBatchCount(ctx context.Context, campaignID int64, baseName string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM batches
		 WHERE lead_recycling_campaign_id = $1
		    OR campaign_name = $2
		    OR name LIKE $2 || '%'`,
		campaignID, baseName,
	).Scan(&count)
	if err != nil {
		return 0, eris.Wrapf(err, "tracker: count batches for campaign %d", campaignID)
	}
	return count, nil
}

func (s *PostgresStore) UpdateBatchName(ctx context.Context, batchID, name string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE batches SET name = $1 WHERE id = $2`,
		name, batchID,
	)
	if err != nil {
		return eris.Wrapf(err, "tracker: update name of batch %s", batchID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("tracker: batch %s not found", batchID)
	}
	return nil
}
