package v1

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only order/ship date format stored in the ledger.
// Zero padding matters: range filters compare dates as plain strings.
const DateLayout = "2006-01-02"

// Sale is one normalized row of the sales ledger.
// The analytics engine only ever reads it.
type Sale struct {
	OrderID string `json:"order_id"`

	// OrderDate is "" when the source date was missing or unparseable.
	// Such rows never contribute to date-bucketed or date-filtered views.
	OrderDate string `json:"order_date,omitempty"`
	ShipDate  string `json:"ship_date,omitempty"`
	ShipMode  string `json:"ship_mode"`

	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Segment      string `json:"segment"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	Category     string `json:"category"`
	SubCategory  string `json:"sub_category"`
	ProductName  string `json:"product_name"`

	Sales    decimal.Decimal `json:"sales"`
	Quantity int64           `json:"quantity"`
	Discount decimal.Decimal `json:"discount"`
	Profit   decimal.Decimal `json:"profit"`
}

// IsDate reports whether s is a real calendar date in zero-padded YYYY-MM-DD form.
func IsDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// HasOrderDate reports whether the order date is present and valid.
func (s *Sale) HasOrderDate() bool {
	return IsDate(s.OrderDate)
}

// OrderMonth returns the YYYY-MM bucket of the order date.
// ok is false when the order date is absent or invalid.
func (s *Sale) OrderMonth() (month string, ok bool) {
	if !s.HasOrderDate() {
		return "", false
	}
	return s.OrderDate[:7], true
}

// MaxAmount bounds the magnitude of every currency column. It matches the
// NUMERIC(18, 4) columns of the Postgres schema and keeps SQLite REAL values finite.
var MaxAmount = decimal.New(1, 14)

// Validate rejects rows that break the ledger's value constraints.
func (s *Sale) Validate() error {
	if s.Sales.IsNegative() {
		return fmt.Errorf("sales must not be negative, got %s", s.Sales.String())
	}
	for _, amount := range []struct {
		column string
		value  decimal.Decimal
	}{
		{column: "sales", value: s.Sales},
		{column: "discount", value: s.Discount},
		{column: "profit", value: s.Profit},
	} {
		if amount.value.Abs().GreaterThanOrEqual(MaxAmount) {
			return fmt.Errorf("%s is out of range (|value| must be < %s)", amount.column, MaxAmount.String())
		}
	}
	if s.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative, got %d", s.Quantity)
	}
	if s.OrderDate != "" && !IsDate(s.OrderDate) {
		return fmt.Errorf("order_date %q is not a %s date", s.OrderDate, DateLayout)
	}
	if s.ShipDate != "" && !IsDate(s.ShipDate) {
		return fmt.Errorf("ship_date %q is not a %s date", s.ShipDate, DateLayout)
	}
	return nil
}
