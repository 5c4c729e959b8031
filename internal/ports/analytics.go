package ports

import (
	"context"

	"seolink/internal/domain"
)

// AnalyticsSource loads per-url search performance.
// A missing source is not an error and yields no rows.
type AnalyticsSource interface {
	LoadPerformanceRows(ctx context.Context) ([]domain.PerformanceRow, error)
}
