package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/prospect-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	industry   TEXT NOT NULL,
	size_range TEXT NOT NULL,
	location   TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'running',
	companies  INTEGER NOT NULL DEFAULT 0,
	contacts   INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS run_companies (
	id         TEXT PRIMARY KEY,
	run_id     TEXT NOT NULL REFERENCES runs(id),
	name       TEXT NOT NULL,
	position   INTEGER NOT NULL,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
CREATE INDEX IF NOT EXISTS idx_runs_industry ON runs(industry);
CREATE INDEX IF NOT EXISTS idx_run_companies_run_id ON run_companies(run_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateRun(ctx context.Context, industry, sizeRange, location string) (*model.Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, industry, size_range, location, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, industry, sizeRange, location, string(model.RunStatusRunning), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
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

func (s *SQLiteStore) CompleteRun(ctx context.Context, runID string, companies, contacts int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, companies = ?, contacts = ?, updated_at = ? WHERE id = ?`,
		string(model.RunStatusComplete), companies, contacts, time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: complete run %s", runID)
	}
	return checkRowsAffected(res, "run", runID)
}

func (s *SQLiteStore) FailRun(ctx context.Context, runID string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`,
		string(model.RunStatusFailed), time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: fail run %s", runID)
	}
	return checkRowsAffected(res, "run", runID)
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, industry, size_range, location, status, companies, contacts, created_at, updated_at
		 FROM runs WHERE id = ?`,
		runID,
	)
	return scanRun(row)
}

func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	query := `SELECT id, industry, size_range, location, status, companies, contacts, created_at, updated_at
	          FROM runs WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.Industry != "" {
		query += ` AND industry = ?`
		args = append(args, filter.Industry)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

func (s *SQLiteStore) SaveCompanies(ctx context.Context, runID string, companies []model.Company) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin save companies")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_companies WHERE run_id = ?`, runID); err != nil {
		return eris.Wrapf(err, "sqlite: clear companies for run %s", runID)
	}

	now := time.Now().UTC()
	for i, company := range companies {
		data, err := json.Marshal(company)
		if err != nil {
			return eris.Wrapf(err, "sqlite: marshal company %s", company.Name)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_companies (id, run_id, name, position, data, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), runID, company.Name, i, string(data), now,
		)
		if err != nil {
			return eris.Wrapf(err, "sqlite: insert company %s", company.Name)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit save companies")
}

func (s *SQLiteStore) ListCompanies(ctx context.Context, runID string) ([]model.Company, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM run_companies WHERE run_id = ? ORDER BY position ASC`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: list companies for run %s", runID)
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan company")
		}
		var c model.Company
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal company")
		}
		companies = append(companies, c)
	}
	return companies, eris.Wrap(rows.Err(), "sqlite: list companies iterate")
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (*model.Run, error) {
	var r model.Run
	err := row.Scan(&r.ID, &r.Industry, &r.SizeRange, &r.Location,
		&r.Status, &r.Companies, &r.Contacts, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("run not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan run")
	}
	return &r, nil
}
