// Package store persists prospecting runs and their discovered
// companies, with SQLite and Postgres backends behind one interface.
package store

import (
	"context"

	"github.com/sells-group/prospect-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status   model.RunStatus `json:"status,omitempty"`
	Industry string          `json:"industry,omitempty"`
	Limit    int             `json:"limit,omitempty"`
	Offset   int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for the prospecting pipeline.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, industry, sizeRange, location string) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, companies, contacts int) error
	FailRun(ctx context.Context, runID string) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Companies. SaveCompanies replaces the run's company set, so a
	// pipeline stage can re-save after enrichment.
	SaveCompanies(ctx context.Context, runID string, companies []model.Company) error
	ListCompanies(ctx context.Context, runID string) ([]model.Company, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
