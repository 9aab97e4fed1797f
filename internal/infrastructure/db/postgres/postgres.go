// Package postgres implements the table repositories against the Supabase
// project database over a plain database/sql connection.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to open the database.
type Config struct {
	DSN      string
	MaxConns int
	MaxIdle  int
	Timeout  time.Duration
}

// Connect opens the Postgres pool, verifies connectivity with a ping, and
// returns the handle. A default timeout is applied when none is provided.
// On ping failure the handle is returned alongside the error: the pool
// retries lazily, so the caller can start degraded and recover once the
// database answers.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return db, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}
