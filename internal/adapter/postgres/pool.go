package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/centralring-backend/internal/config"
	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const (
	applicationName = "central-ring"
	connectTimeout  = 10 * time.Second
)

// NewPool opens the catalog's connection pool and fails fast when the
// database cannot be reached. A DSN that already names an
// application_name keeps it.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	pcfg.MaxConns, pcfg.MinConns = cfg.MaxConns, cfg.MinConns
	pcfg.MaxConnLifetime, pcfg.MaxConnIdleTime = cfg.MaxConnLifetime, cfg.MaxConnIdleTime

	params := pcfg.ConnConfig.RuntimeParams
	if params["application_name"] == "" {
		params["application_name"] = applicationName
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, domain.NewUpstreamError("database", fmt.Errorf("create connection pool: %w", err))
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, domain.NewUpstreamError("database", fmt.Errorf("ping database: %w", err))
	}
	return pool, nil
}
