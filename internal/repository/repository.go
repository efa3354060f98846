// Package repository persists accounts in PostgreSQL.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool sizing for a small CRUD workload: a handful of short transactions
// per request, no long-running queries.
const (
	poolMaxConns = 10
	poolMinConns = 2
)

// Repository owns the connection pool and the account queries.
type Repository struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and verifies the connection before returning.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = poolMaxConns
	poolCfg.MinConns = poolMinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Repository{pool: pool}, nil
}

// Ping checks database connectivity. Used by the readiness probe.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases all pooled connections.
func (r *Repository) Close() {
	r.pool.Close()
}

// Pool exposes the underlying pool for test fixtures (schema reset,
// advisory locks). Application code goes through Repository methods.
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}
