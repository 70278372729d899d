package storage

import (
	"context"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/core/filter"
)

// SalesReader is the read capability the analytics engine is built on.
type SalesReader interface {
	// QuerySales returns every row matching scope in one atomic read, in
	// insertion order. Unset predicate fields place no constraint (SQL
	// "NULL means any"); order-date bounds are inclusive string comparisons.
	QuerySales(ctx context.Context, scope filter.Predicate) ([]*v1.Sale, error)
}

// SalesWriter loads the ledger.
type SalesWriter interface {
	// ReplaceSales deletes every stored row and inserts sales in one transaction,
	// so a re-run of the same import never duplicates rows.
	// Returns the number of rows written.
	ReplaceSales(ctx context.Context, sales []*v1.Sale) (int, error)
}

// SalesStore is a ledger that can be both loaded and queried.
type SalesStore interface {
	SalesReader
	SalesWriter
}
