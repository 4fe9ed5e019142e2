package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPostgresFromPool(mock), mock
}

func TestPostgresStore_CreateRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO runs`).
		WithArgs(pgxmock.AnyArg(), "fintech", "51-200", "Bengaluru",
			"running", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	run, err := s.CreateRun(context.Background(), "fintech", "51-200", "Bengaluru")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CompleteRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE runs SET status`).
		WithArgs("complete", 12, 30, pgxmock.AnyArg(), "run-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.CompleteRun(context.Background(), "run-1", 12, 30))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CompleteRun_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE runs SET status`).
		WithArgs("complete", 0, 0, pgxmock.AnyArg(), "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.CompleteRun(context.Background(), "missing", 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPostgresStore_FailRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE runs SET status`).
		WithArgs("failed", pgxmock.AnyArg(), "run-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.FailRun(context.Background(), "run-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, industry, size_range, location, status, companies, contacts, created_at, updated_at`).
		WithArgs("run-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "industry", "size_range", "location", "status",
			"companies", "contacts", "created_at", "updated_at",
		}).AddRow("run-1", "fintech", "51-200", "Bengaluru", model.RunStatusComplete, 12, 30, now, now))

	run, err := s.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "fintech", run.Industry)
	assert.Equal(t, 12, run.Companies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRun_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, industry`).
		WithArgs("nonexistent-run").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetRun(context.Background(), "nonexistent-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPostgresStore_ListRuns_Filtered(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM runs WHERE true AND status = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("complete", 100).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "industry", "size_range", "location", "status",
			"companies", "contacts", "created_at", "updated_at",
		}).AddRow("run-1", "fintech", "51-200", "Bengaluru", model.RunStatusComplete, 12, 30, now, now))

	runs, err := s.ListRuns(context.Background(), RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveCompanies(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM run_companies`).
		WithArgs("run-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`INSERT INTO run_companies`).
		WithArgs(pgxmock.AnyArg(), "run-1", "Acme", 0, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO run_companies`).
		WithArgs(pgxmock.AnyArg(), "run-1", "Beta", 1, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := s.SaveCompanies(context.Background(), "run-1", []model.Company{
		{Name: "Acme"},
		{Name: "Beta"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveCompanies_RollsBackOnInsertFailure(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM run_companies`).
		WithArgs("run-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`INSERT INTO run_companies`).
		WithArgs(pgxmock.AnyArg(), "run-1", "Acme", 0, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(eris.New("connection reset"))
	mock.ExpectRollback()

	err := s.SaveCompanies(context.Background(), "run-1", []model.Company{
		{Name: "Acme"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert company")
	// The delete must not survive the failed insert.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListCompanies(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT data FROM run_companies`).
		WithArgs("run-1").
		WillReturnRows(pgxmock.NewRows([]string{"data"}).
			AddRow([]byte(`{"name":"Acme","industry":"fintech","source":"linkedin_site_search","icp_score":85}`)).
			AddRow([]byte(`{"name":"Beta","industry":"fintech","source":"linkedin_site_search","icp_score":85}`)))

	companies, err := s.ListCompanies(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Acme", companies[0].Name)
	assert.Equal(t, 85, companies[0].ICPScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
