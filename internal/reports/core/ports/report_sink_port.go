package ports

import (
	"context"

	"ga-report-exporter/internal/reports/core/domain"
)

type ReportSinkPort interface {
	// Name identifies the sink in logs ("file", "s3", "postgres").
	Name() string
	// Save persists the artifact and returns where it went (path, URI or table).
	Save(ctx context.Context, a *domain.Artifact) (location string, err error)
}
