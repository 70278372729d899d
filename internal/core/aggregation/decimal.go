package aggregation

import "github.com/shopspring/decimal"

// Rounding applied to every value the engine returns.
const (
	MoneyPlaces = 2
	SlopePlaces = 4
)

// RoundMoney rounds d to MoneyPlaces, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ParseAmount reads a numeric cell. Blank or unparseable input is zero, which
// matches how the ledger has always coerced bad amounts.
func ParseAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
