package projection

import (
	"errors"
	"log/slog"
	"net/http"

	httperr "github.com/aevon-lab/sales-analytics/internal/core/errors"
	"github.com/aevon-lab/sales-analytics/internal/core/filter"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all query API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	sales := r.Group("/api/sales")
	sales.GET("/monthly", s.HandleMonthly)
	sales.GET("/top-categories", s.HandleTopCategories)
	sales.GET("/regions", s.HandleRegions)
	sales.GET("/summary", s.HandleSummary)

	// Predict is read-only, so GET is served alongside POST.
	sales.POST("/predict", s.HandlePredict)
	sales.GET("/predict", s.HandlePredict)
}

// HandleMonthly handles GET /api/sales/monthly
// Query parameters: region, category, start, end
func (s *Service) HandleMonthly(c *gin.Context) {
	q, ok := bindQuery(c, monthlyParams)
	if !ok {
		return
	}

	resp, err := s.Monthly(c.Request.Context(), q)
	if err != nil {
		writeQueryError(c, err, "Failed to query monthly sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleTopCategories handles GET /api/sales/top-categories
// Query parameters: region, start, end, limit
func (s *Service) HandleTopCategories(c *gin.Context) {
	q, ok := bindQuery(c, topCategoriesParams)
	if !ok {
		return
	}

	resp, err := s.TopCategories(c.Request.Context(), q)
	if err != nil {
		writeQueryError(c, err, "Failed to query top categories")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleRegions handles GET /api/sales/regions
// Query parameters: category, start, end
func (s *Service) HandleRegions(c *gin.Context) {
	q, ok := bindQuery(c, regionsParams)
	if !ok {
		return
	}

	resp, err := s.Regions(c.Request.Context(), q)
	if err != nil {
		writeQueryError(c, err, "Failed to query region totals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandlePredict handles POST|GET /api/sales/predict
// Query parameters: region, category, start, end
func (s *Service) HandlePredict(c *gin.Context) {
	q, ok := bindQuery(c, predictParams)
	if !ok {
		return
	}

	resp, err := s.Predict(c.Request.Context(), q)
	if err != nil {
		writeQueryError(c, err, "Failed to compute forecast")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleSummary handles GET /api/sales/summary
// Query parameters: region, category, start, end, limit
func (s *Service) HandleSummary(c *gin.Context) {
	q, ok := bindQuery(c, summaryParams)
	if !ok {
		return
	}

	resp, err := s.Summary(c.Request.Context(), q)
	if err != nil {
		writeQueryError(c, err, "Failed to build sales summary")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func bindQuery(c *gin.Context, accepted []string) (SalesQuery, bool) {
	q, err := parseQuery(c.Request.URL.Query(), accepted)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return SalesQuery{}, false
	}
	return q, true
}

func writeQueryError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, filter.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidFilterError,
			Message:   "Invalid filter",
			Details:   err.Error(),
		})
	case errors.Is(err, ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
	default:
		slog.Error(message, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}
