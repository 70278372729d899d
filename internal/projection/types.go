package projection

// SalesQuery is the raw filter a request carries. Blank fields are unset.
type SalesQuery struct {
	Region   string
	Category string
	Start    string
	End      string
	Limit    string
}

// MonthlyPointResponse is one month of GET /api/sales/monthly.
type MonthlyPointResponse struct {
	Month       string  `json:"month"`
	TotalSales  float64 `json:"total_sales"`
	TotalProfit float64 `json:"total_profit"`
}

// CategoryTotalResponse is one row of GET /api/sales/top-categories.
type CategoryTotalResponse struct {
	Category    string  `json:"category"`
	TotalSales  float64 `json:"total_sales"`
	TotalProfit float64 `json:"total_profit"`
}

// RegionTotalResponse is one row of GET /api/sales/regions.
type RegionTotalResponse struct {
	Region     string  `json:"region"`
	TotalSales float64 `json:"total_sales"`
}

// ForecastResponse is the body of /api/sales/predict.
// Slope and ForecastMonth are omitted when there was nothing to fit.
type ForecastResponse struct {
	NextMonthForecast float64  `json:"next_month_forecast"`
	PointsUsed        int      `json:"points_used"`
	Slope             *float64 `json:"slope,omitempty"`
	ForecastMonth     string   `json:"forecast_month,omitempty"`
}

// OverviewResponse carries the headline numbers of a filter scope.
type OverviewResponse struct {
	Records      int64   `json:"records"`
	TotalSales   float64 `json:"total_sales"`
	TotalProfit  float64 `json:"total_profit"`
	SmallestSale float64 `json:"smallest_sale"`
	LargestSale  float64 `json:"largest_sale"`
}

// SummaryResponse bundles every view of one filter scope.
type SummaryResponse struct {
	Overview      OverviewResponse        `json:"overview"`
	Monthly       []MonthlyPointResponse  `json:"monthly"`
	TopCategories []CategoryTotalResponse `json:"top_categories"`
	Regions       []RegionTotalResponse   `json:"regions"`
	Forecast      ForecastResponse        `json:"forecast"`
}
