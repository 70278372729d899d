package main

import (
	"database/sql"
	"fmt"

	corecfg "github.com/aevon-lab/sales-analytics/internal/core/config"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/aevon-lab/sales-analytics/internal/core/storage/memory"
	"github.com/aevon-lab/sales-analytics/internal/core/storage/postgres"
	"github.com/aevon-lab/sales-analytics/internal/core/storage/sqlite"
	"github.com/aevon-lab/sales-analytics/internal/migrations"
)

// openedStore pairs the sales store with its SQL handle. db is nil for the
// in-memory store.
type openedStore struct {
	store storage.SalesStore
	db    *sql.DB
}

func (s openedStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openStore(cfg corecfg.DatabaseConfig) (openedStore, error) {
	switch cfg.Type {
	case corecfg.DatabasePostgres:
		db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return openedStore{}, err
		}
		return migrateAndWrap(db, migrations.Postgres, cfg.AutoMigrate, func(db *sql.DB) (storage.SalesStore, error) {
			return postgres.NewAdapter(db)
		})

	case corecfg.DatabaseSQLite:
		db, err := sqlite.Open(cfg.DSN, cfg.MaxOpenConns)
		if err != nil {
			return openedStore{}, err
		}
		return migrateAndWrap(db, migrations.SQLite, cfg.AutoMigrate, func(db *sql.DB) (storage.SalesStore, error) {
			return sqlite.NewAdapter(db)
		})

	case corecfg.DatabaseMemory:
		return openedStore{store: memory.NewStore()}, nil

	default:
		return openedStore{}, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

func migrateAndWrap(db *sql.DB, dbType string, autoMigrate bool, wrap func(*sql.DB) (storage.SalesStore, error)) (openedStore, error) {
	if err := migrations.RunMigrations(db, dbType, autoMigrate); err != nil {
		db.Close()
		return openedStore{}, fmt.Errorf("run %s migrations: %w", dbType, err)
	}
	store, err := wrap(db)
	if err != nil {
		db.Close()
		return openedStore{}, err
	}
	return openedStore{store: store, db: db}, nil
}
