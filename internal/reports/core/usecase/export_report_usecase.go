package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ga-report-exporter/internal/reports/core/domain"
	"ga-report-exporter/internal/reports/core/ports"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ReportFetcher interface {
	Execute(ctx context.Context, cursor string) (*domain.Report, error)
}

type ExportReportUseCase struct {
	fetcher ReportFetcher
	viewID  string
	sinks   []ports.ReportSinkPort
	log     logrus.FieldLogger

	now   func() time.Time
	runID func() string
}

type ExportOption func(*ExportReportUseCase)

func WithClock(now func() time.Time) ExportOption {
	return func(uc *ExportReportUseCase) { uc.now = now }
}

func WithRunIDGenerator(gen func() string) ExportOption {
	return func(uc *ExportReportUseCase) { uc.runID = gen }
}

func NewExportReportUseCase(
	fetcher ReportFetcher,
	viewID string,
	sinks []ports.ReportSinkPort,
	log logrus.FieldLogger,
	opts ...ExportOption,
) *ExportReportUseCase {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	uc := &ExportReportUseCase{
		fetcher: fetcher,
		viewID:  viewID,
		sinks:   sinks,
		log:     log,
		now:     time.Now,
		runID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute aggregates every page, hands the serialised report to each sink in
// order and builds the success envelope. Any failure aborts the run.
func (uc *ExportReportUseCase) Execute(ctx context.Context) (*domain.ExportResult, error) {
	runID := uc.runID()
	log := uc.log.WithFields(logrus.Fields{
		"run_id":  runID,
		"view_id": uc.viewID,
	})

	log.Info("export started")

	report, err := uc.fetcher.Execute(ctx, "")
	if err != nil {
		log.WithError(err).Error("report fetch failed")
		return nil, err
	}

	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	artifact := &domain.Artifact{
		RunID:     runID,
		ViewID:    uc.viewID,
		CreatedAt: uc.now(),
		Body:      body,
		Report:    report,
	}

	for _, sink := range uc.sinks {
		location, err := sink.Save(ctx, artifact)
		if err != nil {
			log.WithError(err).WithField("sink", sink.Name()).Error("report persistence failed")
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrPersistence, sink.Name(), err)
		}
		log.WithFields(logrus.Fields{
			"sink":     sink.Name(),
			"location": location,
		}).Info("report persisted")
	}

	log.WithField("rows", report.RowsLen()).Info("export finished")

	return &domain.ExportResult{
		RunID:  runID,
		Rows:   report.RowsLen(),
		Report: report,
		Response: domain.ProxyResponse{
			StatusCode: http.StatusOK,
			Body:       string(body),
		},
	}, nil
}
