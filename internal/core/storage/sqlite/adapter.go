package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/core/filter"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"

	_ "modernc.org/sqlite"
)

// Adapter implements storage.SalesStore on a local SQLite file.
type Adapter struct {
	db *sql.DB
}

// Open creates the parent directory if needed and opens the database file.
func Open(path string, maxOpenConns int) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	// Readers and the import transaction share the file; wait on locks instead of failing.
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	slog.Info("[SQLite] Database opened", "path", path, "max_open_conns", maxOpenConns)
	return db, nil
}

// NewAdapter wraps an open connection whose schema has been migrated.
func NewAdapter(db *sql.DB) (*Adapter, error) {
	var tables int
	if err := db.QueryRow(queryTableExists).Scan(&tables); err != nil {
		return nil, fmt.Errorf("failed to check schema: %w", err)
	}
	if tables == 0 {
		return nil, fmt.Errorf("schema validation failed - did you run migrations?: sales table does not exist")
	}
	return &Adapter{db: db}, nil
}

// QuerySales returns every row in scope, ordered by insertion id.
func (a *Adapter) QuerySales(ctx context.Context, scope filter.Predicate) ([]*v1.Sale, error) {
	rows, err := a.db.QueryContext(ctx, querySelectSales,
		storage.FilterArg(scope.Region()),
		storage.FilterArg(scope.Category()),
		storage.FilterArg(scope.Start()),
		storage.FilterArg(scope.End()),
	)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	sales := make([]*v1.Sale, 0)
	for rows.Next() {
		sale, scanErr := storage.ScanSale(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}

	return sales, nil
}

// ReplaceSales swaps the whole ledger for sales in a single transaction.
func (a *Adapter) ReplaceSales(ctx context.Context, sales []*v1.Sale) (int, error) {
	if err := storage.ValidateSales(sales); err != nil {
		return 0, fmt.Errorf("replace sales: %w", err)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("replace sales: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, queryDeleteSales); err != nil {
		return 0, fmt.Errorf("replace sales: clear ledger: %w", err)
	}

	insertStmt, err := tx.PrepareContext(ctx, queryInsertSale)
	if err != nil {
		return 0, fmt.Errorf("replace sales: prepare insert: %w", err)
	}
	defer insertStmt.Close()

	for i, sale := range sales {
		if _, err := insertStmt.ExecContext(ctx, storage.SaleArgs(sale)...); err != nil {
			return 0, fmt.Errorf("replace sales: insert row %d (order %q): %w", i, sale.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("replace sales: commit: %w", err)
	}

	slog.Info("[SQLite] Replaced sales ledger", "rows", len(sales))
	return len(sales), nil
}

// DB returns the underlying *sql.DB for health checks and migrations.
func (a *Adapter) DB() *sql.DB {
	return a.db
}

// Close closes the database connection.
func (a *Adapter) Close() error {
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	slog.Info("[SQLite] Adapter closed gracefully")
	return nil
}
