package tracker

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite. Intended for local
// runs against a scratch tracker; the table is created on open since no
// dashboard owns the schema in that setup.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS batches (
	id                         TEXT PRIMARY KEY,
	name                       TEXT NOT NULL,
	campaign_name              TEXT NOT NULL DEFAULT '',
	lead_recycling_campaign_id INTEGER,
	created_at                 DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_batches_campaign_id ON batches(lead_recycling_campaign_id);
CREATE INDEX IF NOT EXISTS idx_batches_name ON batches(name);
`

// NewSQLite opens a SQLite database at the given path, configures WAL mode,
// and ensures the batches table exists.
func NewSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "tracker: sqlite open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := sqlDB.ExecContext(ctx, pragma); err != nil {
			sqlDB.Close()
			return nil, eris.Wrapf(err, "tracker: sqlite exec %s", pragma)
		}
	}
	if _, err := sqlDB.ExecContext(ctx, sqliteMigration); err != nil {
		sqlDB.Close()
		return nil, eris.Wrap(err, "tracker: sqlite migrate")
	}
	return &SQLiteStore{db: sqlDB}, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ExistingBatchCount(ctx context.Context, campaignID int64, baseName string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM batches
		 WHERE lead_recycling_campaign_id = ?
		    OR campaign_name = ?
		    OR name LIKE ? || '%'`,
		campaignID, baseName, baseName,
	).Scan(&count)
	if err != nil {
		return 0, eris.Wrapf(err, "tracker: count batches for campaign %d", campaignID)
	}
	return count, nil
}

func (s *SQLiteStore) UpdateBatchName(ctx context.Context, batchID, name string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE batches SET name = ? WHERE id = ?`,
		name, batchID,
	)
	if err != nil {
		return eris.Wrapf(err, "tracker: update name of batch %s", batchID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "tracker: rows affected")
	}
	if n == 0 {
		return eris.Errorf("tracker: batch %s not found", batchID)
	}
	return nil
}
