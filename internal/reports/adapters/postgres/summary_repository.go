package postgres

import (
	"context"
	"fmt"
	"time"

	"ga-report-exporter/internal/reports/core/domain"
	"ga-report-exporter/internal/reports/core/ports"
)

const summaryWhere = "view_id = $1 AND day BETWEEN $2::date AND $3::date"

// SessionsSummaryRepository reads back what DailySessionsRepository archived.
type SessionsSummaryRepository struct {
	db QueryDB
}

func NewSessionsSummaryRepository(db QueryDB) *SessionsSummaryRepository {
	return &SessionsSummaryRepository{db: db}
}

var _ ports.SessionsReaderPort = (*SessionsSummaryRepository)(nil)

func (r *SessionsSummaryRepository) QuerySessions(ctx context.Context, f ports.SessionsFilter) (*domain.SessionsSummary, error) {
	args := []any{f.ViewID, f.From, f.To}

	result := &domain.SessionsSummary{
		ViewID:  f.ViewID,
		From:    f.From,
		To:      f.To,
		GroupBy: f.GroupBy,
	}

	switch f.GroupBy {
	case "":
		return r.queryTotals(ctx, args, result)
	case "week", "month":
		return r.queryBuckets(ctx, args, result, f.GroupBy)
	default:
		// the usecase rejects anything else
		return nil, fmt.Errorf("unsupported group_by: %s", f.GroupBy)
	}
}

func (r *SessionsSummaryRepository) queryTotals(
	ctx context.Context,
	args []any,
	res *domain.SessionsSummary,
) (*domain.SessionsSummary, error) {
	query := `
SELECT
    COALESCE(SUM(sessions), 0) AS total_sessions,
    COUNT(*) AS days
FROM daily_sessions
WHERE ` + summaryWhere

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&res.TotalSessions, &res.Days); err != nil {
			return nil, err
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *SessionsSummaryRepository) queryBuckets(
	ctx context.Context,
	args []any,
	res *domain.SessionsSummary,
	interval string,
) (*domain.SessionsSummary, error) {
	query := fmt.Sprintf(`
SELECT
    date_trunc('%s', day)::date AS bucket,
    SUM(sessions) AS sessions,
    COUNT(*) AS days
FROM daily_sessions
WHERE %s
GROUP BY bucket
ORDER BY bucket
`, interval, summaryWhere)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.SessionsBucket

	for rows.Next() {
		var bucket time.Time
		var sessions, days int64

		if err := rows.Scan(&bucket, &sessions, &days); err != nil {
			return nil, err
		}

		groups = append(groups, domain.SessionsBucket{
			Key:      bucket.UTC().Format(time.DateOnly),
			Sessions: sessions,
			Days:     days,
		})
		res.TotalSessions += sessions
		res.Days += days
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	res.Groups = groups

	return res, nil
}
