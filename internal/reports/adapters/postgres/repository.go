package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ga-report-exporter/internal/reports/core/domain"
	"ga-report-exporter/internal/reports/core/ports"

	"github.com/lib/pq"
)

// GA returns ga:date as YYYYMMDD.
const gaDateLayout = "20060102"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS daily_sessions (
    view_id    TEXT        NOT NULL,
    day        DATE        NOT NULL,
    sessions   BIGINT      NOT NULL,
    run_id     TEXT        NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (view_id, day)
);
CREATE TABLE IF NOT EXISTS export_runs (
    run_id     TEXT PRIMARY KEY,
    view_id    TEXT        NOT NULL,
    row_count  INTEGER     NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
`

const upsertDailySessionsSQL = `
INSERT INTO daily_sessions (view_id, day, sessions, run_id, updated_at)
SELECT $1, t.day, t.sessions, $4, $5
FROM UNNEST($2::date[], $3::bigint[]) AS t(day, sessions)
ON CONFLICT (view_id, day) DO UPDATE
SET sessions   = EXCLUDED.sessions,
    run_id     = EXCLUDED.run_id,
    updated_at = EXCLUDED.updated_at;
`

const insertExportRunSQL = `
INSERT INTO export_runs (run_id, view_id, row_count, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (run_id) DO NOTHING;
`

// DailySessionsRepository archives the per-day session counts of each export.
// Extra dimensions are summed away so each day is written once.
type DailySessionsRepository struct {
	db DB
}

func NewDailySessionsRepository(db DB) *DailySessionsRepository {
	return &DailySessionsRepository{db: db}
}

var _ ports.ReportSinkPort = (*DailySessionsRepository)(nil)

func (r *DailySessionsRepository) Name() string { return "postgres" }

func (r *DailySessionsRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schemaSQL)
	return err
}

func (r *DailySessionsRepository) Save(ctx context.Context, a *domain.Artifact) (string, error) {
	days, sessions, err := dailySessions(a.Report)
	if err != nil {
		return "", err
	}

	createdAt := a.CreatedAt.UTC()

	if len(days) > 0 {
		if _, err := r.db.ExecContext(ctx, upsertDailySessionsSQL,
			a.ViewID,
			pq.Array(days),
			pq.Array(sessions),
			a.RunID,
			createdAt,
		); err != nil {
			return "", err
		}
	}

	if _, err := r.db.ExecContext(ctx, insertExportRunSQL,
		a.RunID,
		a.ViewID,
		len(days),
		createdAt,
	); err != nil {
		return "", err
	}

	return fmt.Sprintf("daily_sessions (%d rows)", len(days)), nil
}

// dailySessions collapses the report to one sessions total per day. The date
// and sessions columns are located through the column header; without a header
// the first dimension and first metric are used.
func dailySessions(report *domain.Report) ([]string, []int64, error) {
	if report == nil || report.Data == nil {
		return nil, nil, nil
	}

	dateCol, sessionsCol, err := archiveColumns(report.ColumnHeader)
	if err != nil {
		return nil, nil, err
	}

	var days []string
	totals := make(map[string]int64, len(report.Data.Rows))

	for i, row := range report.Data.Rows {
		if len(row.Dimensions) <= dateCol || len(row.Metrics) == 0 || len(row.Metrics[0].Values) <= sessionsCol {
			return nil, nil, fmt.Errorf("row %d: missing date or sessions value", i)
		}

		raw := row.Dimensions[dateCol]
		day, err := time.Parse(gaDateLayout, raw)
		if err != nil {
			// tolerate ISO dates as well
			day, err = time.Parse(time.DateOnly, raw)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: invalid date %q", i, raw)
			}
		}

		n, err := strconv.ParseInt(row.Metrics[0].Values[sessionsCol], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: invalid sessions %q", i, row.Metrics[0].Values[sessionsCol])
		}

		key := day.Format(time.DateOnly)
		if _, seen := totals[key]; !seen {
			days = append(days, key)
		}
		totals[key] += n
	}

	sessions := make([]int64, 0, len(days))
	for _, d := range days {
		sessions = append(sessions, totals[d])
	}

	return days, sessions, nil
}

func archiveColumns(h *domain.ColumnHeader) (int, int, error) {
	if h == nil {
		return 0, 0, nil
	}

	dateCol := columnIndex(h.Dimensions, domain.DefaultDimension)
	if dateCol < 0 {
		return 0, 0, fmt.Errorf("report has no %s dimension (got %v)", domain.DefaultDimension, h.Dimensions)
	}

	sessionsCol := columnIndex(h.Metrics, domain.DefaultMetric)
	if sessionsCol < 0 {
		return 0, 0, fmt.Errorf("report has no %s metric (got %v)", domain.DefaultMetric, h.Metrics)
	}

	return dateCol, sessionsCol, nil
}

// columnIndex matches header names with or without the ga: namespace.
func columnIndex(names []string, want string) int {
	for i, n := range names {
		if strings.TrimPrefix(n, "ga:") == want {
			return i
		}
	}
	return -1
}
