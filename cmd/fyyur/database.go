package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	"fyyur/internal/migrations"
)

// Driver names registered by the blank imports above. The server talks to
// Postgres through pgx; golang-migrate's postgres driver expects lib/pq.
const (
	driverPgx = "pgx"
	driverPq  = "postgres"
)

// openDatabase establishes a database connection and retries until the instance responds.
func openDatabase(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	const (
		pingTimeout    = 5 * time.Second
		maxWait        = 30 * time.Second
		initialBackoff = 500 * time.Millisecond
		maxBackoff     = 5 * time.Second
	)

	deadline := time.Now().Add(maxWait)
	backoff := initialBackoff
	var lastErr error

	for {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			return db, nil
		}

		// Respect caller cancellation.
		if ctx.Err() != nil {
			break
		}

		if time.Now().After(deadline) {
			break
		}

		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("ping database: %w", lastErr)
}

// withMigrationDB opens a short-lived connection for schema changes.
func withMigrationDB(ctx context.Context, cfg Config, fn func(*sql.DB) error) error {
	if cfg.Store != storePostgres {
		return fmt.Errorf("migrations need STORE=%s, got %q", storePostgres, cfg.Store)
	}

	db, err := openDatabase(ctx, driverPq, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(db)
}

// schemaVersion reports the applied migration version for startup logs.
func schemaVersion(ctx context.Context, cfg Config) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := withMigrationDB(ctx, cfg, func(db *sql.DB) error {
		var err error
		version, dirty, err = migrations.Version(db)
		return err
	})
	return version, dirty, err
}
