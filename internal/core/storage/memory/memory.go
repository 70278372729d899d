// Package memory is an in-process sales ledger for development and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	"github.com/aevon-lab/sales-analytics/internal/core/filter"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
)

// Store implements storage.SalesStore on a slice guarded by a RWMutex.
// Records are copied on the way in and out so callers never share state with it.
type Store struct {
	mu    sync.RWMutex
	sales []v1.Sale
}

// NewStore returns a store preloaded with a copy of sales.
func NewStore(sales ...*v1.Sale) *Store {
	s := &Store{}
	s.sales = copyIn(sales)
	return s
}

// QuerySales returns copies of every stored row that matches scope, in insertion order.
func (s *Store) QuerySales(ctx context.Context, scope filter.Predicate) ([]*v1.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*v1.Sale, 0)
	for i := range s.sales {
		if !scope.Matches(&s.sales[i]) {
			continue
		}
		sale := s.sales[i]
		out = append(out, &sale)
	}
	return out, nil
}

// ReplaceSales swaps the ledger atomically.
func (s *Store) ReplaceSales(ctx context.Context, sales []*v1.Sale) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := storage.ValidateSales(sales); err != nil {
		return 0, fmt.Errorf("replace sales: %w", err)
	}

	next := copyIn(sales)

	s.mu.Lock()
	s.sales = next
	s.mu.Unlock()

	return len(next), nil
}

// Len returns the number of stored rows.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sales)
}

func copyIn(sales []*v1.Sale) []v1.Sale {
	out := make([]v1.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale != nil {
			out = append(out, *sale)
		}
	}
	return out
}
