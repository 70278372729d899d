package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImportResult describes one completed ledger import.
type ImportResult struct {
	ImportID     string `json:"import_id"`
	Rows         int    `json:"rows"`
	UndatedRows  int    `json:"undated_rows"`
	RejectedRows int    `json:"rejected_rows"`
	DurationMs   int64  `json:"duration_ms"`
}

type Service struct {
	store            storage.SalesWriter
	maxBodySizeBytes int
}

func NewService(store storage.SalesWriter, maxBodySizeMB int) *Service {
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 10
	}
	return &Service{
		store:            store,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/sales/import", s.ImportHandler)
}

// Import parses a sales export and replaces the ledger with it. Running the
// same import twice leaves the ledger unchanged.
func (s *Service) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	started := time.Now()
	importID := uuid.NewString()

	sales, stats, err := ParseSales(r)
	if err != nil {
		return nil, err
	}

	written, err := s.store.ReplaceSales(ctx, sales)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", importID, err)
	}

	result := &ImportResult{
		ImportID:     importID,
		Rows:         written,
		UndatedRows:  stats.UndatedRows,
		RejectedRows: stats.RejectedRows,
		DurationMs:   time.Since(started).Milliseconds(),
	}

	slog.Info("Sales ledger imported",
		"import_id", result.ImportID,
		"rows", result.Rows,
		"undated_rows", result.UndatedRows,
		"rejected_rows", result.RejectedRows,
		"duration_ms", result.DurationMs)

	return result, nil
}

// ImportFile imports the export at path.
func (s *Service) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return s.Import(ctx, f)
}
