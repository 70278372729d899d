package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/core/aggregation"
)

// ErrInvalidCSV marks an upload that cannot be read as a sales export.
var ErrInvalidCSV = errors.New("invalid sales csv")

// Column headers of the sales export. Some exports use underscores in the
// two-word product columns, so those carry an alias.
const (
	colOrderID      = "Order ID"
	colOrderDate    = "Order Date"
	colShipDate     = "Ship Date"
	colShipMode     = "Ship Mode"
	colCustomerID   = "Customer ID"
	colCustomerName = "Customer Name"
	colSegment      = "Segment"
	colCountry      = "Country"
	colRegion       = "Region"
	colCategory     = "Category"
	colSubCategory  = "Sub-Category"
	colProductName  = "Product Name"
	colSales        = "Sales"
	colQuantity     = "Quantity"
	colDiscount     = "Discount"
	colProfit       = "Profit"
)

var columnAliases = map[string]string{
	"Sub_Category": colSubCategory,
	"Product_Name": colProductName,
}

// ParseStats counts rows that were kept but lost information, or dropped.
type ParseStats struct {
	UndatedRows  int
	RejectedRows int
}

// ParseSales reads a sales export with a header row. Unknown columns are
// ignored; missing columns read as blank. Bad numeric cells coerce to zero
// and unreadable order dates are stored as absent. Rows that still violate
// the ledger constraints are dropped and counted in RejectedRows.
func ParseSales(r io.Reader) ([]*v1.Sale, ParseStats, error) {
	var stats ParseStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, stats, invalidCSVf("empty input")
	}
	if err != nil {
		return nil, stats, invalidCSVf("read header: %v", err)
	}

	index := headerIndex(header)
	if _, ok := index[colSales]; !ok {
		return nil, stats, invalidCSVf("missing %q column", colSales)
	}

	sales := make([]*v1.Sale, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, invalidCSVf("%v", err)
		}
		if isBlankRecord(record) {
			continue
		}

		row := csvRow{index: index, record: record}
		sale := row.sale()
		if sale.OrderDate == "" {
			stats.UndatedRows++
		}
		if err := sale.Validate(); err != nil {
			stats.RejectedRows++
			continue
		}
		sales = append(sales, sale)
	}

	if len(sales) == 0 {
		return nil, stats, invalidCSVf("no usable data rows")
	}
	return sales, stats, nil
}

type csvRow struct {
	index  map[string]int
	record []string
}

func (r csvRow) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r csvRow) sale() *v1.Sale {
	orderDate, _ := NormalizeDate(r.get(colOrderDate))
	shipDate, _ := NormalizeDate(r.get(colShipDate))

	return &v1.Sale{
		OrderID:      r.get(colOrderID),
		OrderDate:    orderDate,
		ShipDate:     shipDate,
		ShipMode:     r.get(colShipMode),
		CustomerID:   r.get(colCustomerID),
		CustomerName: r.get(colCustomerName),
		Segment:      r.get(colSegment),
		Country:      r.get(colCountry),
		Region:       r.get(colRegion),
		Category:     r.get(colCategory),
		SubCategory:  r.get(colSubCategory),
		ProductName:  r.get(colProductName),
		Sales:        aggregation.ParseAmount(r.get(colSales)),
		Quantity:     parseQuantity(r.get(colQuantity)),
		Discount:     aggregation.ParseAmount(r.get(colDiscount)),
		Profit:       aggregation.ParseAmount(r.get(colProfit)),
	}
}

// headerIndex maps canonical column names to their position. The first
// occurrence of a column wins.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if canonical, ok := columnAliases[name]; ok {
			name = canonical
		}
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

// parseQuantity reads a whole number. Fractional input is truncated and
// anything unparseable is zero.
func parseQuantity(raw string) int64 {
	if raw == "" {
		return 0
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return aggregation.ParseAmount(raw).IntPart()
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func invalidCSVf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidCSV, fmt.Sprintf(format, args...))
}
