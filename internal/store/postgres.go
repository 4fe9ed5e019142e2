package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store needs. Narrow on purpose
// so tests can substitute a pgxmock pool.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool, used by tests.
func NewPostgresFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	industry   TEXT NOT NULL,
	size_range TEXT NOT NULL,
	location   TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'running',
	companies  INTEGER NOT NULL DEFAULT 0,
	contacts   INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS run_companies (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	run_id     TEXT NOT NULL REFERENCES runs(id),
	name       TEXT NOT NULL,
	position   INTEGER NOT NULL,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
CREATE INDEX IF NOT EXISTS idx_runs_industry ON runs(industry);
CREATE INDEX IF NOT EXISTS idx_run_companies_run_id ON run_companies(run_id);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) CreateRun(ctx context.Context, industry, sizeRange, location string) (*model.Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO runs (id, industry, size_range, location, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, industry, sizeRange, location, string(model.RunStatusRunning), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert run")
	}

	return &model.Run{
		ID:        id,
		Industry:  industry,
		SizeRange: sizeRange,
		Location:  location,
		Status:    model.RunStatusRunning,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *PostgresStore) CompleteRun(ctx context.Context, runID string, companies, contacts int) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE runs SET status = $1, companies = $2, contacts = $3, updated_at = $4 WHERE id = $5`,
		string(model.RunStatusComplete), companies, contacts, time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: complete run %s", runID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("run not found: %s", runID)
	}
	return nil
}

func (s *PostgresStore) FailRun(ctx context.Context, runID string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE runs SET status = $1, updated_at = $2 WHERE id = $3`,
		string(model.RunStatusFailed), time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: fail run %s", runID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("run not found: %s", runID)
	}
	return nil
}

func (s *PostgresStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	var r model.Run
	err := s.pool.QueryRow(ctx,
		`SELECT id, industry, size_range, location, status, companies, contacts, created_at, updated_at
		 FROM runs WHERE id = $1`,
		runID,
	).Scan(&r.ID, &r.Industry, &r.SizeRange, &r.Location,
		&r.Status, &r.Companies, &r.Contacts, &r.CreatedAt, &r.UpdatedAt)
	if notFound(err) {
		return nil, eris.Errorf("run not found: %s", runID)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get run %s", runID)
	}
	return &r, nil
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	query := `SELECT id, industry, size_range, location, status, companies, contacts, created_at, updated_at
	          FROM runs WHERE true`
	args := []any{}
	argIdx := 1

	if filter.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIdx)
		args = append(args, string(filter.Status))
		argIdx++
	}
	if filter.Industry != "" {
		query += fmt.Sprintf(` AND industry = $%d`, argIdx)
		args = append(args, filter.Industry)
		argIdx++
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list runs")
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		var r model.Run
		if err := rows.Scan(&r.ID, &r.Industry, &r.SizeRange, &r.Location,
			&r.Status, &r.Companies, &r.Contacts, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan run")
		}
		runs = append(runs, r)
	}
	return runs, eris.Wrap(rows.Err(), "postgres: list runs iterate")
}

func (s *PostgresStore) SaveCompanies(ctx context.Context, runID string, companies []model.Company) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "postgres: begin save companies")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM run_companies WHERE run_id = $1`, runID); err != nil {
		return eris.Wrapf(err, "postgres: clear companies for run %s", runID)
	}

	now := time.Now().UTC()
	for i, company := range companies {
		data, err := json.Marshal(company)
		if err != nil {
			return eris.Wrapf(err, "postgres: marshal company %s", company.Name)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO run_companies (id, run_id, name, position, data, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), runID, company.Name, i, data, now,
		)
		if err != nil {
			return eris.Wrapf(err, "postgres: insert company %s", company.Name)
		}
	}

	return eris.Wrap(tx.Commit(ctx), "postgres: commit save companies")
}

func (s *PostgresStore) ListCompanies(ctx context.Context, runID string) ([]model.Company, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT data FROM run_companies WHERE run_id = $1 ORDER BY position ASC`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: list companies for run %s", runID)
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "postgres: scan company")
		}
		var c model.Company
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal company")
		}
		companies = append(companies, c)
	}
	return companies, eris.Wrap(rows.Err(), "postgres: list companies iterate")
}

// notFound reports whether err is a missing-row error.
func notFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
