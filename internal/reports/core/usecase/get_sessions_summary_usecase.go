package usecase

import (
	"context"
	"errors"
	"time"

	"ga-report-exporter/internal/reports/core/domain"
	"ga-report-exporter/internal/reports/core/ports"
)

var (
	ErrInvalidSummaryQuery = errors.New("invalid sessions summary query")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidGroupBy      = errors.New("invalid group_by value")
)

type GetSessionsSummaryInput struct {
	ViewID  string // falls back to the configured view
	From    string
	To      string
	GroupBy string
}

type GetSessionsSummaryUseCase struct {
	reader        ports.SessionsReaderPort
	defaultViewID string
}

func NewGetSessionsSummaryUseCase(reader ports.SessionsReaderPort, defaultViewID string) *GetSessionsSummaryUseCase {
	return &GetSessionsSummaryUseCase{reader: reader, defaultViewID: defaultViewID}
}

// Execute validates the input and reads the archived totals.
func (uc *GetSessionsSummaryUseCase) Execute(ctx context.Context, in GetSessionsSummaryInput) (*domain.SessionsSummary, error) {
	viewID := in.ViewID
	if viewID == "" {
		viewID = uc.defaultViewID
	}
	if viewID == "" {
		return nil, ErrInvalidSummaryQuery
	}

	from, err := time.Parse(time.DateOnly, in.From)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	to, err := time.Parse(time.DateOnly, in.To)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}

	switch in.GroupBy {
	case "", "week", "month":
	default:
		return nil, ErrInvalidGroupBy
	}

	return uc.reader.QuerySessions(ctx, ports.SessionsFilter{
		ViewID:  viewID,
		From:    from.Format(time.DateOnly),
		To:      to.Format(time.DateOnly),
		GroupBy: in.GroupBy,
	})
}
