package postgres

import "github.com/aevon-lab/sales-analytics/internal/core/storage"

// SQL queries for the sales ledger.

const (
	// querySelectSales fetches one filter scope in insertion order.
	// A NULL parameter means "no constraint" on that column. order_date is TEXT in
	// zero-padded ISO form, so the range check is a byte-wise string comparison
	// (COLLATE "C" keeps the server locale out of it).
	querySelectSales = `
		SELECT
			` + storage.SaleColumns + `
		FROM sales
		WHERE ($1::text IS NULL OR region = $1)
		  AND ($2::text IS NULL OR category = $2)
		  AND ($3::text IS NULL OR order_date COLLATE "C" >= $3)
		  AND ($4::text IS NULL OR order_date COLLATE "C" <= $4)
		ORDER BY id ASC
	`

	// queryDeleteSales clears the ledger ahead of a full re-import.
	queryDeleteSales = `DELETE FROM sales`

	queryInsertSale = `
		INSERT INTO sales (
			` + storage.SaleColumns + `
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	queryTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'sales'
		)
	`
)
