package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petalsoft/sakuradrill/internal/infrastructure/config"
)

// NewRemotePool creates a pgx connection pool for the shared family store.
// Returns (nil, noop, nil) when no remote is configured; the engine then
// runs local-only.
func NewRemotePool(cfg *config.Config) (*pgxpool.Pool, func(), error) {
	if !cfg.Remote.Enabled() {
		return nil, func() {}, nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.Remote.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = 4

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping remote store: %w", err)
	}

	return pool, pool.Close, nil
}
