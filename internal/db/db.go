// Package db provides PostgreSQL storage for audit snapshots and comparisons.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

const schema = `
CREATE TABLE IF NOT EXISTS audit_snapshots (
	id            UUID PRIMARY KEY,
	profile_url   TEXT NOT NULL,
	platform      TEXT NOT NULL,
	captured_at   TIMESTAMPTZ NOT NULL,
	iso_year      INTEGER NOT NULL,
	week_number   INTEGER NOT NULL,
	overall_score INTEGER NOT NULL CHECK (overall_score BETWEEN 0 AND 100),
	grade         TEXT NOT NULL,
	audit         JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS audit_snapshots_profile_idx
	ON audit_snapshots (profile_url, platform, captured_at DESC);

CREATE TABLE IF NOT EXISTS audit_comparisons (
	id                UUID PRIMARY KEY,
	your_snapshot_id  UUID REFERENCES audit_snapshots (id) ON DELETE SET NULL,
	their_snapshot_id UUID REFERENCES audit_snapshots (id) ON DELETE SET NULL,
	your_score        INTEGER NOT NULL,
	their_score       INTEGER NOT NULL,
	gap               JSONB NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate creates the tables if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
