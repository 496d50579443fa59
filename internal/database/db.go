package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eagleinfoservice/directory-api/internal/repository"
)

// PoolConfig holds pool sizing knobs. Zero values keep the pgx defaults.
type PoolConfig struct {
	MinConns int32
	MaxConns int32
}

// Connect opens a PostgreSQL connection pool using pgx and verifies
// connectivity. Every new connection prepares the lookup statement catalog,
// so the repository's query strings always execute against parsed plans.
func Connect(ctx context.Context, dsn string, poolCfg PoolConfig) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN must not be empty")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}

	if poolCfg.MinConns > 0 {
		cfg.MinConns = poolCfg.MinConns
	}
	if poolCfg.MaxConns > 0 {
		cfg.MaxConns = poolCfg.MaxConns
	}

	// Sane defaults for a service-oriented workload.
	cfg.MaxConnLifetime = 1 * time.Hour
	cfg.MaxConnIdleTime = 15 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		// Each statement is prepared under its own text, so issuing that
		// text at query time hits the prepared version.
		for _, sql := range repository.PreparedStatements() {
			if _, err := conn.Prepare(ctx, sql, sql); err != nil {
				return fmt.Errorf("prepare lookup statement: %w", err)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
