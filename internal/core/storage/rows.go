package storage

import (
	"database/sql"
	"errors"
	"fmt"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
)

// ErrInvalidSale marks a write batch containing a row the ledger cannot hold.
var ErrInvalidSale = errors.New("invalid sale")

// ValidateSales checks every row of a write batch before any store is touched,
// so one bad row never replaces a good ledger. Nil rows are skipped.
func ValidateSales(sales []*v1.Sale) error {
	for i, sale := range sales {
		if sale == nil {
			continue
		}
		if err := sale.Validate(); err != nil {
			return fmt.Errorf("%w: row %d (order %q): %v", ErrInvalidSale, i, sale.OrderID, err)
		}
	}
	return nil
}

// SaleColumns is the column list every SQL adapter selects and inserts, in
// the order ScanSale and SaleArgs expect.
const SaleColumns = `order_id, order_date, ship_date, ship_mode,
			customer_id, customer_name, segment, country,
			region, category, sub_category, product_name,
			sales, quantity, discount, profit`

// Scanner is satisfied by both *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanSale scans one row laid out as SaleColumns. NULL text columns become "".
func ScanSale(row Scanner) (*v1.Sale, error) {
	var (
		sale v1.Sale
		text [12]sql.NullString
	)

	err := row.Scan(
		&text[0], &text[1], &text[2], &text[3],
		&text[4], &text[5], &text[6], &text[7],
		&text[8], &text[9], &text[10], &text[11],
		&sale.Sales, &sale.Quantity, &sale.Discount, &sale.Profit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale row: %w", err)
	}

	sale.OrderID = text[0].String
	sale.OrderDate = text[1].String
	sale.ShipDate = text[2].String
	sale.ShipMode = text[3].String
	sale.CustomerID = text[4].String
	sale.CustomerName = text[5].String
	sale.Segment = text[6].String
	sale.Country = text[7].String
	sale.Region = text[8].String
	sale.Category = text[9].String
	sale.SubCategory = text[10].String
	sale.ProductName = text[11].String

	return &sale, nil
}

// SaleArgs returns the insert arguments for s in SaleColumns order.
// Empty text fields are written as NULL, the same as the source seeder did.
func SaleArgs(s *v1.Sale) []interface{} {
	return []interface{}{
		NullableString(s.OrderID),
		NullableString(s.OrderDate),
		NullableString(s.ShipDate),
		NullableString(s.ShipMode),
		NullableString(s.CustomerID),
		NullableString(s.CustomerName),
		NullableString(s.Segment),
		NullableString(s.Country),
		NullableString(s.Region),
		NullableString(s.Category),
		NullableString(s.SubCategory),
		NullableString(s.ProductName),
		s.Sales,
		s.Quantity,
		s.Discount,
		s.Profit,
	}
}

// NullableString maps "" to SQL NULL.
func NullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// FilterArg maps an optional predicate field to a query argument: unset
// fields bind as NULL so "(? IS NULL OR col = ?)" places no constraint.
func FilterArg(value string, ok bool) sql.NullString {
	return sql.NullString{String: value, Valid: ok}
}
