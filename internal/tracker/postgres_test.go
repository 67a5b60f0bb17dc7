package tracker

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresExistingBatchCount(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM batches\s+WHERE lead_recycling_campaign_id = \$1\s+OR campaign_name = \$2\s+OR name LIKE \$2 \|\| '%'`).
		WithArgs(int64(7), "Acme (GMaps)").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := s.ExistingBatchCount(context.Background(), 7, "Acme (GMaps)")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresExistingBatchCountError(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM batches`).
		WithArgs(int64(7), "Acme (GMaps)").
		WillReturnError(assert.AnError)

	_, err := s.ExistingBatchCount(context.Background(), 7, "Acme (GMaps)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count batches for campaign 7")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateBatchName(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE batches SET name = \$1 WHERE id = \$2`).
		WithArgs("Acme (GMaps)", "batch-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := s.UpdateBatchName(context.Background(), "batch-123", "Acme (GMaps)")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateBatchNameNotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE batches SET name = \$1 WHERE id = \$2`).
		WithArgs("Acme (GMaps)", "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.UpdateBatchName(context.Background(), "missing", "Acme (GMaps)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch missing not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
