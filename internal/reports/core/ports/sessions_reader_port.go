package ports

import (
	"context"

	"ga-report-exporter/internal/reports/core/domain"
)

type SessionsFilter struct {
	ViewID  string
	From    string // YYYY-MM-DD, inclusive
	To      string // YYYY-MM-DD, inclusive
	GroupBy string // "", "week", "month"
}

type SessionsReaderPort interface {
	QuerySessions(ctx context.Context, f SessionsFilter) (*domain.SessionsSummary, error)
}
