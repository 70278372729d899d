package projection

import (
	"context"

	"github.com/aevon-lab/sales-analytics/internal/core/aggregation"
	"github.com/aevon-lab/sales-analytics/internal/core/forecast"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Service implements the query layer: it turns a SalesQuery into a filter
// predicate, runs the aggregator and forecaster, and shapes the response.
type Service struct {
	aggregator *aggregation.Aggregator
}

// NewService creates a query service over a read-only store handle.
func NewService(store storage.SalesReader) *Service {
	return &Service{aggregator: aggregation.NewAggregator(store)}
}

// Monthly returns the monthly sales and profit series.
func (s *Service) Monthly(ctx context.Context, q SalesQuery) ([]MonthlyPointResponse, error) {
	pred, err := q.predicate()
	if err != nil {
		return nil, err
	}

	points, err := s.aggregator.MonthlySeries(ctx, pred)
	if err != nil {
		return nil, err
	}
	return monthlyResponse(points), nil
}

// TopCategories returns the highest-grossing categories.
func (s *Service) TopCategories(ctx context.Context, q SalesQuery) ([]CategoryTotalResponse, error) {
	pred, err := q.predicate()
	if err != nil {
		return nil, err
	}

	ranked, err := s.aggregator.TopCategories(ctx, pred, aggregation.ParseLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return categoriesResponse(ranked), nil
}

// Regions returns total sales per region.
func (s *Service) Regions(ctx context.Context, q SalesQuery) ([]RegionTotalResponse, error) {
	pred, err := q.predicate()
	if err != nil {
		return nil, err
	}

	ranked, err := s.aggregator.RegionTotals(ctx, pred)
	if err != nil {
		return nil, err
	}
	return regionsResponse(ranked), nil
}

// Predict forecasts next month's sales from the monthly series of the scope.
func (s *Service) Predict(ctx context.Context, q SalesQuery) (ForecastResponse, error) {
	pred, err := q.predicate()
	if err != nil {
		return ForecastResponse{}, err
	}

	points, err := s.aggregator.MonthlySeries(ctx, pred)
	if err != nil {
		return ForecastResponse{}, err
	}
	return forecastResponse(forecast.Linear(points)), nil
}

// Summary computes every view of one scope concurrently. Any failed read
// fails the whole summary.
func (s *Service) Summary(ctx context.Context, q SalesQuery) (*SummaryResponse, error) {
	pred, err := q.predicate()
	if err != nil {
		return nil, err
	}
	limit := aggregation.ParseLimit(q.Limit)

	var (
		overview aggregation.Overview
		points   []aggregation.MonthlyPoint
		ranked   []aggregation.CategoryTotal
		regions  []aggregation.RegionTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview, err = s.aggregator.Overview(gctx, pred)
		return err
	})
	g.Go(func() error {
		var err error
		points, err = s.aggregator.MonthlySeries(gctx, pred)
		return err
	})
	g.Go(func() error {
		var err error
		ranked, err = s.aggregator.TopCategories(gctx, pred, limit)
		return err
	})
	g.Go(func() error {
		var err error
		regions, err = s.aggregator.RegionTotals(gctx, pred)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SummaryResponse{
		Overview: OverviewResponse{
			Records:      overview.Records,
			TotalSales:   money(overview.TotalSales),
			TotalProfit:  money(overview.TotalProfit),
			SmallestSale: money(overview.SmallestSale),
			LargestSale:  money(overview.LargestSale),
		},
		Monthly:       monthlyResponse(points),
		TopCategories: categoriesResponse(ranked),
		Regions:       regionsResponse(regions),
		Forecast:      forecastResponse(forecast.Linear(points)),
	}, nil
}

// money converts an already-rounded amount for JSON output.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func monthlyResponse(points []aggregation.MonthlyPoint) []MonthlyPointResponse {
	out := make([]MonthlyPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, MonthlyPointResponse{
			Month:       p.Month,
			TotalSales:  money(p.TotalSales),
			TotalProfit: money(p.TotalProfit),
		})
	}
	return out
}

func categoriesResponse(ranked []aggregation.CategoryTotal) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, CategoryTotalResponse{
			Category:    c.Category,
			TotalSales:  money(c.TotalSales),
			TotalProfit: money(c.TotalProfit),
		})
	}
	return out
}

func regionsResponse(ranked []aggregation.RegionTotal) []RegionTotalResponse {
	out := make([]RegionTotalResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RegionTotalResponse{
			Region:     r.Region,
			TotalSales: money(r.TotalSales),
		})
	}
	return out
}

func forecastResponse(p forecast.Projection) ForecastResponse {
	resp := ForecastResponse{
		NextMonthForecast: money(p.Forecast),
		PointsUsed:        p.PointsUsed,
		ForecastMonth:     p.Month,
	}
	if p.Slope != nil {
		slope := p.Slope.InexactFloat64()
		resp.Slope = &slope
	}
	return resp
}
