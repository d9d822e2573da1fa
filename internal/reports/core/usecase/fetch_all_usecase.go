package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"ga-report-exporter/internal/reports/core/domain"
	"ga-report-exporter/internal/reports/core/ports"

	"github.com/sirupsen/logrus"
)

// diagnosticLimit caps the payload snippet logged for a malformed page.
const diagnosticLimit = 1000

type FetchAllUseCase struct {
	query ports.ReportQueryPort
	cfg   domain.ReportConfig
	log   logrus.FieldLogger
}

func NewFetchAllUseCase(query ports.ReportQueryPort, cfg domain.ReportConfig, log logrus.FieldLogger) *FetchAllUseCase {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &FetchAllUseCase{query: query, cfg: cfg, log: log}
}

// Execute fetches every page starting at cursor ("" for the first page) and
// returns one report whose rows are the concatenation of all pages in arrival
// order. The first page's report is reused as the aggregate, but it is only
// modified once every page has been fetched and validated.
func (uc *FetchAllUseCase) Execute(ctx context.Context, cursor string) (*domain.Report, error) {
	first, err := uc.fetchPage(ctx, cursor)
	if err != nil {
		return nil, err
	}

	if !first.HasNextPage() {
		if first.Data == nil {
			first.Data = &domain.ReportData{}
		}
		if first.Data.Rows == nil {
			first.Data.Rows = []domain.Row{}
		}
		return first, nil
	}

	if first.Data == nil {
		return nil, uc.malformed(first, cursor, "first page carries a cursor but no row container")
	}

	rows := make([]domain.Row, 0, len(first.Data.Rows))
	rows = append(rows, first.Data.Rows...)
	pages := 1

	for next := first.NextPageToken; next != nil; {
		if uc.cfg.MaxPages > 0 && pages >= uc.cfg.MaxPages {
			return nil, fmt.Errorf("%w: fetched %d pages, upstream still returned cursor %q",
				domain.ErrPageLimitExceeded, pages, *next)
		}

		page, err := uc.fetchPage(ctx, *next)
		if err != nil {
			return nil, err
		}
		pages++

		if page.Data == nil {
			return nil, uc.malformed(page, *next, "page has no row container")
		}

		rows = append(rows, page.Data.Rows...)
		next = page.NextPageToken
	}

	first.Data.Rows = rows
	first.NextPageToken = nil

	uc.log.WithFields(logrus.Fields{
		"pages": pages,
		"rows":  len(rows),
	}).Info("report pages aggregated")

	return first, nil
}

func (uc *FetchAllUseCase) fetchPage(ctx context.Context, cursor string) (*domain.Report, error) {
	uc.log.WithField("page_token", cursor).Info("fetching report page")

	resp, err := uc.query.BatchGet(ctx, uc.cfg.QueryFor(cursor))
	if err != nil {
		return nil, err
	}

	if resp == nil || len(resp.Reports) == 0 || resp.Reports[0] == nil {
		return nil, uc.malformed(resp, cursor, "response has no reports")
	}

	return resp.Reports[0], nil
}

func (uc *FetchAllUseCase) malformed(payload any, cursor, reason string) error {
	uc.log.WithFields(logrus.Fields{
		"page_token": cursor,
		"payload":    truncatePayload(payload, diagnosticLimit),
	}).Error(reason)

	return fmt.Errorf("%w: %s (page_token=%q)", domain.ErrMalformedUpstreamResponse, reason, cursor)
}

func truncatePayload(payload any, limit int) string {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%+v", payload)
	}

	s := []rune(string(b))
	if len(s) > limit {
		return string(s[:limit])
	}
	return string(s)
}
