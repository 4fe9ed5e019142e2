package main

import (
	"context"

	"github.com/sells-group/prospect-cli/internal/store"
)

// initStore opens the configured backend and applies migrations.
func initStore(ctx context.Context) (store.Store, error) {
	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}

	var (
		s   store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "postgres":
		s, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	default:
		s, err = store.NewSQLite(cfg.Store.DatabaseURL)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
