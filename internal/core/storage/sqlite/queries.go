package sqlite

import "github.com/aevon-lab/sales-analytics/internal/core/storage"

const (
	// querySelectSales binds each filter value once by index; a NULL value
	// places no constraint. SQLite compares TEXT with the BINARY collation, so
	// the zero-padded order_date range check is byte-wise.
	querySelectSales = `
		SELECT
			` + storage.SaleColumns + `
		FROM sales
		WHERE (?1 IS NULL OR region = ?1)
		  AND (?2 IS NULL OR category = ?2)
		  AND (?3 IS NULL OR order_date >= ?3)
		  AND (?4 IS NULL OR order_date <= ?4)
		ORDER BY id ASC
	`

	queryDeleteSales = `DELETE FROM sales`

	queryInsertSale = `
		INSERT INTO sales (
			` + storage.SaleColumns + `
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	queryTableExists = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'sales'`
)
