package aggregation

import (
	"fmt"
	"time"
)

// MonthLayout is the bucket key format of the monthly series.
const MonthLayout = "2006-01"

// NextMonth returns the bucket key immediately after month.
func NextMonth(month string) (string, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil || len(month) != len(MonthLayout) {
		return "", fmt.Errorf("invalid month key %q", month)
	}
	return t.AddDate(0, 1, 0).Format(MonthLayout), nil
}
