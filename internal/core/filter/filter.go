package filter

import (
	"errors"
	"fmt"
	"strings"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
)

// ErrInvalidFilter marks malformed filter input. Callers map it to HTTP 400.
var ErrInvalidFilter = errors.New("invalid filter")

// Params is the raw, unvalidated shape of a filter as it arrives from a request.
// Blank values mean "no constraint".
type Params struct {
	Region   string
	Category string
	Start    string
	End      string
}

// Predicate is a validated set of optional constraints shared by every
// aggregation call. It is a value type: copies never share state, and the
// zero value places no constraint on anything.
type Predicate struct {
	region   string
	category string
	start    string
	end      string
}

// New validates p and builds a Predicate. A supplied date that is not a real
// zero-padded YYYY-MM-DD date fails with ErrInvalidFilter.
func New(p Params) (Predicate, error) {
	pred := Predicate{
		region:   strings.TrimSpace(p.Region),
		category: strings.TrimSpace(p.Category),
		start:    strings.TrimSpace(p.Start),
		end:      strings.TrimSpace(p.End),
	}

	if pred.start != "" && !v1.IsDate(pred.start) {
		return Predicate{}, invalidf("start %q must be a %s date", pred.start, v1.DateLayout)
	}
	if pred.end != "" && !v1.IsDate(pred.end) {
		return Predicate{}, invalidf("end %q must be a %s date", pred.end, v1.DateLayout)
	}

	return pred, nil
}

// MustNew is New for literals in tests and fixtures. It panics on invalid input.
func MustNew(p Params) Predicate {
	pred, err := New(p)
	if err != nil {
		panic(err)
	}
	return pred
}

// Region returns the region constraint and whether it is set.
func (p Predicate) Region() (string, bool) { return p.region, p.region != "" }

// Category returns the category constraint and whether it is set.
func (p Predicate) Category() (string, bool) { return p.category, p.category != "" }

// Start returns the inclusive lower order-date bound and whether it is set.
func (p Predicate) Start() (string, bool) { return p.start, p.start != "" }

// End returns the inclusive upper order-date bound and whether it is set.
func (p Predicate) End() (string, bool) { return p.end, p.end != "" }

// HasDateRange reports whether either order-date bound is set.
func (p Predicate) HasDateRange() bool {
	return p.start != "" || p.end != ""
}

// WithoutRegion returns a copy with the region constraint dropped.
func (p Predicate) WithoutRegion() Predicate {
	p.region = ""
	return p
}

// WithoutCategory returns a copy with the category constraint dropped.
func (p Predicate) WithoutCategory() Predicate {
	p.category = ""
	return p
}

// Matches applies every set constraint to s.
// Date bounds compare as strings, which is only sound because stored dates are
// zero-padded; a row without a valid order date never satisfies a date bound.
func (p Predicate) Matches(s *v1.Sale) bool {
	if s == nil {
		return false
	}
	if p.region != "" && s.Region != p.region {
		return false
	}
	if p.category != "" && s.Category != p.category {
		return false
	}
	if !p.HasDateRange() {
		return true
	}
	if !s.HasOrderDate() {
		return false
	}
	if p.start != "" && s.OrderDate < p.start {
		return false
	}
	if p.end != "" && s.OrderDate > p.end {
		return false
	}
	return true
}

// String renders the set constraints for logs.
func (p Predicate) String() string {
	var parts []string
	if p.region != "" {
		parts = append(parts, "region="+p.region)
	}
	if p.category != "" {
		parts = append(parts, "category="+p.category)
	}
	if p.start != "" {
		parts = append(parts, "start="+p.start)
	}
	if p.end != "" {
		parts = append(parts, "end="+p.end)
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, " ")
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidFilter, fmt.Sprintf(format, args...))
}
