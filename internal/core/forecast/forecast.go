// Package forecast projects the next month of a monthly sales series.
package forecast

import (
	"github.com/aevon-lab/sales-analytics/internal/core/aggregation"
	"github.com/shopspring/decimal"
)

// Projection is a one-step-ahead revenue forecast.
type Projection struct {
	// Forecast is the projected total sales for the month after the last point,
	// rounded to 2 dp. Zero when there are no points.
	Forecast decimal.Decimal

	// PointsUsed is the number of monthly points the line was fitted to.
	PointsUsed int

	// Slope is the fitted per-month change, rounded to 4 dp.
	// Nil when there were no points to fit.
	Slope *decimal.Decimal

	// Month is the YYYY-MM key being forecast. Empty when there are no points.
	Month string
}

// Linear fits y = m·x + b by ordinary least squares, with x = 0..n-1 in series
// order and y = each month's total sales, then evaluates it at x = n.
//
// When the denominator nΣx² − (Σx)² is zero (a single point), the fit falls
// back to m = 0 and b = the last observed y.
func Linear(points []aggregation.MonthlyPoint) Projection {
	n := len(points)
	if n == 0 {
		return Projection{Forecast: decimal.Zero}
	}

	var sumX, sumY, sumXY, sumXX decimal.Decimal
	for i, p := range points {
		x := decimal.NewFromInt(int64(i))
		y := p.TotalSales
		sumX = sumX.Add(x)
		sumY = sumY.Add(y)
		sumXY = sumXY.Add(x.Mul(y))
		sumXX = sumXX.Add(x.Mul(x))
	}

	count := decimal.NewFromInt(int64(n))
	denominator := count.Mul(sumXX).Sub(sumX.Mul(sumX))

	var slope, intercept decimal.Decimal
	if denominator.IsZero() {
		slope = decimal.Zero
		intercept = points[n-1].TotalSales
	} else {
		slope = count.Mul(sumXY).Sub(sumX.Mul(sumY)).Div(denominator)
		intercept = sumY.Sub(slope.Mul(sumX)).Div(count)
	}

	forecast := slope.Mul(count).Add(intercept)
	roundedSlope := slope.Round(aggregation.SlopePlaces)

	// The last point came out of MonthlySeries, so its key is always valid.
	month, _ := aggregation.NextMonth(points[n-1].Month)

	return Projection{
		Forecast:   aggregation.RoundMoney(forecast),
		PointsUsed: n,
		Slope:      &roundedSlope,
		Month:      month,
	}
}
