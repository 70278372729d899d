package aggregation

import (
	"github.com/shopspring/decimal"
)

// Supported reduce operators.
const (
	OpCount = "count"
	OpSum   = "sum"
	OpMin   = "min"
	OpMax   = "max"
)

// MonthlyPoint is one YYYY-MM bucket of the monthly series.
type MonthlyPoint struct {
	Month       string          // YYYY-MM
	TotalSales  decimal.Decimal // rounded to 2 dp
	TotalProfit decimal.Decimal // rounded to 2 dp
}

// CategoryTotal is one row of the top-categories ranking.
type CategoryTotal struct {
	Category    string
	TotalSales  decimal.Decimal
	TotalProfit decimal.Decimal
}

// RegionTotal is one row of the region ranking. Regions carry sales only.
type RegionTotal struct {
	Region     string
	TotalSales decimal.Decimal
}

// Overview summarizes every record in a filter scope.
type Overview struct {
	Records      int64
	TotalSales   decimal.Decimal
	TotalProfit  decimal.Decimal
	SmallestSale decimal.Decimal
	LargestSale  decimal.Decimal
}
