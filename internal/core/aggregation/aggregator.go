package aggregation

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/core/filter"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/shopspring/decimal"
)

// Limit bounds for the top-categories ranking.
const (
	DefaultLimit = 5
	MinLimit     = 1
	MaxLimit     = 50
)

// Aggregator derives every analytic view from one read of the ledger.
// It holds no state between calls and never writes.
type Aggregator struct {
	store storage.SalesReader
}

// NewAggregator creates an aggregator over a read-only store handle.
func NewAggregator(store storage.SalesReader) *Aggregator {
	return &Aggregator{store: store}
}

var (
	countOp = Operators[OpCount]
	sumOp   = Operators[OpSum]
	minOp   = Operators[OpMin]
	maxOp   = Operators[OpMax]
)

// totals folds the records of one group key as they arrive.
type totals struct {
	seen     bool
	records  decimal.Decimal
	sales    decimal.Decimal
	profit   decimal.Decimal
	smallest decimal.Decimal
	largest  decimal.Decimal
}

func (t *totals) add(s *v1.Sale) {
	if !t.seen {
		t.seen = true
		t.records = countOp.Initial(s.Sales)
		t.sales = sumOp.Initial(s.Sales)
		t.profit = sumOp.Initial(s.Profit)
		t.smallest = minOp.Initial(s.Sales)
		t.largest = maxOp.Initial(s.Sales)
		return
	}
	t.records = countOp.Apply(t.records, s.Sales)
	t.sales = sumOp.Apply(t.sales, s.Sales)
	t.profit = sumOp.Apply(t.profit, s.Profit)
	t.smallest = minOp.Apply(t.smallest, s.Sales)
	t.largest = maxOp.Apply(t.largest, s.Sales)
}

func (t *totals) sum() (sales, profit decimal.Decimal) {
	return RoundMoney(t.sales), RoundMoney(t.profit)
}

// MonthlySeries sums sales and profit per YYYY-MM bucket, ascending by month.
// Records without a valid order date are skipped.
func (a *Aggregator) MonthlySeries(ctx context.Context, pred filter.Predicate) ([]MonthlyPoint, error) {
	sales, err := a.read(ctx, pred)
	if err != nil {
		return nil, err
	}

	groups := groupBy(sales, pred, func(s *v1.Sale) (string, bool) {
		return s.OrderMonth()
	})

	months := make([]string, 0, len(groups))
	for month := range groups {
		months = append(months, month)
	}
	sort.Strings(months)

	points := make([]MonthlyPoint, 0, len(months))
	for _, month := range months {
		totalSales, totalProfit := groups[month].sum()
		points = append(points, MonthlyPoint{
			Month:       month,
			TotalSales:  totalSales,
			TotalProfit: totalProfit,
		})
	}
	return points, nil
}

// TopCategories ranks categories by total sales, descending, and keeps the
// first NormalizeLimit(limit). The category constraint of pred is ignored.
func (a *Aggregator) TopCategories(ctx context.Context, pred filter.Predicate, limit int) ([]CategoryTotal, error) {
	scope := pred.WithoutCategory()
	sales, err := a.read(ctx, scope)
	if err != nil {
		return nil, err
	}

	groups := groupBy(sales, scope, func(s *v1.Sale) (string, bool) {
		return s.Category, true
	})

	ranked := make([]CategoryTotal, 0, len(groups))
	for category, t := range groups {
		totalSales, totalProfit := t.sum()
		ranked = append(ranked, CategoryTotal{
			Category:    category,
			TotalSales:  totalSales,
			TotalProfit: totalProfit,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranksBefore(ranked[i].TotalSales, ranked[i].Category, ranked[j].TotalSales, ranked[j].Category)
	})

	if n := NormalizeLimit(limit); len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// RegionTotals ranks regions by total sales, descending. The region
// constraint of pred is ignored.
func (a *Aggregator) RegionTotals(ctx context.Context, pred filter.Predicate) ([]RegionTotal, error) {
	scope := pred.WithoutRegion()
	sales, err := a.read(ctx, scope)
	if err != nil {
		return nil, err
	}

	groups := groupBy(sales, scope, func(s *v1.Sale) (string, bool) {
		return s.Region, true
	})

	ranked := make([]RegionTotal, 0, len(groups))
	for region, t := range groups {
		totalSales, _ := t.sum()
		ranked = append(ranked, RegionTotal{Region: region, TotalSales: totalSales})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranksBefore(ranked[i].TotalSales, ranked[i].Region, ranked[j].TotalSales, ranked[j].Region)
	})
	return ranked, nil
}

// Overview counts the records in scope, totals their sales and profit, and
// reports the smallest and largest single sale.
func (a *Aggregator) Overview(ctx context.Context, pred filter.Predicate) (Overview, error) {
	sales, err := a.read(ctx, pred)
	if err != nil {
		return Overview{}, err
	}

	all := groupBy(sales, pred, func(*v1.Sale) (string, bool) { return "", true })[""]
	if all == nil {
		return Overview{}, nil
	}

	totalSales, totalProfit := all.sum()
	return Overview{
		Records:      all.records.IntPart(),
		TotalSales:   totalSales,
		TotalProfit:  totalProfit,
		SmallestSale: RoundMoney(all.smallest),
		LargestSale:  RoundMoney(all.largest),
	}, nil
}

// NormalizeLimit clamps n into [MinLimit, MaxLimit].
func NormalizeLimit(n int) int {
	switch {
	case n < MinLimit:
		return MinLimit
	case n > MaxLimit:
		return MaxLimit
	default:
		return n
	}
}

var limitPrefix = regexp.MustCompile(`^[+-]?[0-9]+`)

// ParseLimit reads the leading integer of a raw limit parameter, so "10abc"
// is 10 and "3.5" is 3. Input without leading digits yields DefaultLimit;
// anything numeric is clamped by NormalizeLimit.
func ParseLimit(raw string) int {
	digits := limitPrefix.FindString(strings.TrimSpace(raw))
	if digits == "" {
		return DefaultLimit
	}
	// Atoi saturates out-of-range input at the int bounds.
	n, _ := strconv.Atoi(digits)
	return NormalizeLimit(n)
}

func (a *Aggregator) read(ctx context.Context, scope filter.Predicate) ([]*v1.Sale, error) {
	sales, err := a.store.QuerySales(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("read sales (%s): %w", scope, err)
	}
	return sales, nil
}

// groupBy buckets the records that match scope. The store already filters,
// but the predicate is the source of truth for what belongs in a view.
func groupBy(sales []*v1.Sale, scope filter.Predicate, key func(*v1.Sale) (string, bool)) map[string]*totals {
	groups := make(map[string]*totals)
	for _, s := range sales {
		if !scope.Matches(s) {
			continue
		}
		k, ok := key(s)
		if !ok {
			continue
		}
		t, exists := groups[k]
		if !exists {
			t = &totals{}
			groups[k] = t
		}
		t.add(s)
	}
	return groups
}

// ranksBefore orders by total descending, then label ascending, so equal
// totals always come back in the same order.
func ranksBefore(totalA decimal.Decimal, labelA string, totalB decimal.Decimal, labelB string) bool {
	if c := totalA.Cmp(totalB); c != 0 {
		return c > 0
	}
	return labelA < labelB
}
