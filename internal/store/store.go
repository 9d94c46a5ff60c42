// Package store opens the account repository selected by the configuration
// and bootstraps the SQLite schema with embedded goose migrations.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/hashkeeper/internal/config"
	"github.com/dmitrijs2005/hashkeeper/internal/filex"
	"github.com/dmitrijs2005/hashkeeper/internal/migrations"
	"github.com/dmitrijs2005/hashkeeper/internal/repositories/accounts"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if _, err := filex.EnsureDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection keeps transactions on a single SQLite handle.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return db, nil
}

// Open returns the account repository configured by cfg.
func Open(ctx context.Context, cfg *config.Config) (accounts.Repository, error) {
	switch cfg.StoreDriver {
	case config.DriverCSV, "":
		if _, err := filex.EnsureDir(cfg.StorePath); err != nil {
			return nil, err
		}
		return accounts.NewCSVRepository(cfg.StorePath), nil
	case config.DriverSQLite:
		db, err := InitDatabase(ctx, cfg.StorePath)
		if err != nil {
			return nil, err
		}
		return accounts.NewSQLiteRepository(db), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
