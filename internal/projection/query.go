package projection

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/aevon-lab/sales-analytics/internal/core/filter"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid sales query")

// Query parameter names.
const (
	paramRegion   = "region"
	paramCategory = "category"
	paramStart    = "start"
	paramEnd      = "end"
	paramLimit    = "limit"
)

// Accepted parameters per endpoint. Top categories groups by category and
// regions group by region, so neither accepts its own grouping dimension.
var (
	monthlyParams       = []string{paramRegion, paramCategory, paramStart, paramEnd}
	topCategoriesParams = []string{paramRegion, paramStart, paramEnd, paramLimit}
	regionsParams       = []string{paramCategory, paramStart, paramEnd}
	predictParams       = []string{paramRegion, paramCategory, paramStart, paramEnd}
	summaryParams       = []string{paramRegion, paramCategory, paramStart, paramEnd, paramLimit}
)

// parseQuery reads the accepted parameters out of values. Unknown or repeated
// keys are rejected rather than ignored.
func parseQuery(values url.Values, accepted []string) (SalesQuery, error) {
	allowed := make(map[string]bool, len(accepted))
	for _, key := range accepted {
		allowed[key] = true
	}

	var unknown []string
	for key, vals := range values {
		if !allowed[key] {
			unknown = append(unknown, key)
			continue
		}
		if len(vals) > 1 {
			return SalesQuery{}, invalidQueryf("parameter %q given %d times", key, len(vals))
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return SalesQuery{}, invalidQueryf("unsupported parameter(s) %s; accepted: %s",
			strings.Join(unknown, ", "), strings.Join(accepted, ", "))
	}

	return SalesQuery{
		Region:   values.Get(paramRegion),
		Category: values.Get(paramCategory),
		Start:    values.Get(paramStart),
		End:      values.Get(paramEnd),
		Limit:    values.Get(paramLimit),
	}, nil
}

// predicate validates the filter part of q.
func (q SalesQuery) predicate() (filter.Predicate, error) {
	return filter.New(filter.Params{
		Region:   q.Region,
		Category: q.Category,
		Start:    q.Start,
		End:      q.End,
	})
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
