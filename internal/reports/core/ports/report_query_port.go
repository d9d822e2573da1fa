package ports

import (
	"context"

	"ga-report-exporter/internal/reports/core/domain"
)

// ReportQueryPort executes a single report request against the upstream
// reporting service. Implementations must not retry.
type ReportQueryPort interface {
	BatchGet(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error)
}
