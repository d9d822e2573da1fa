package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ga-report-exporter/internal/config"
	"ga-report-exporter/internal/reports/adapters/analytics"
	"ga-report-exporter/internal/reports/adapters/file"
	reportsPg "ga-report-exporter/internal/reports/adapters/postgres"
	reportsS3 "ga-report-exporter/internal/reports/adapters/s3"
	"ga-report-exporter/internal/reports/core/ports"
	"ga-report-exporter/internal/reports/core/usecase"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Exporter owns the export usecase and every resource opened to build it.
// Summary is nil unless Postgres is configured.
type Exporter struct {
	UseCase *usecase.ExportReportUseCase
	Summary *usecase.GetSessionsSummaryUseCase
	sinks   []ports.ReportSinkPort
	closers []func() error
}

func (e *Exporter) SinkNames() []string {
	names := make([]string, 0, len(e.sinks))
	for _, s := range e.sinks {
		names = append(names, s.Name())
	}
	return names
}

func (e *Exporter) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewExporter authenticates against the reporting API and opens the
// configured sinks. The caller must Close the returned exporter.
func NewExporter(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Exporter, error) {
	svc, err := analytics.NewReportingService(ctx, cfg.Analytics.KeyFile)
	if err != nil {
		return nil, err
	}

	fetchAll := usecase.NewFetchAllUseCase(
		analytics.NewReportingClient(svc),
		cfg.ReportConfig(),
		log.WithField("component", "aggregator"),
	)

	e := &Exporter{}
	if err := e.openSinks(ctx, cfg, log); err != nil {
		_ = e.Close()
		return nil, err
	}

	e.UseCase = usecase.NewExportReportUseCase(
		fetchAll,
		cfg.Analytics.ViewID,
		e.sinks,
		log.WithField("component", "export"),
	)

	return e, nil
}

func (e *Exporter) openSinks(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	if !cfg.Output.Disabled {
		e.sinks = append(e.sinks, file.NewReportFileSink(cfg.Output.Dir, cfg.Output.Prefix))
	}

	if cfg.S3.Bucket != "" {
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.S3.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.S3.Region))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return fmt.Errorf("load aws config: %w", err)
		}

		e.sinks = append(e.sinks, reportsS3.NewReportObjectSink(
			awss3.NewFromConfig(awsCfg),
			cfg.S3.Bucket,
			cfg.S3.KeyPrefix,
			cfg.Output.Prefix,
		))
	}

	if cfg.Postgres.DSN != "" {
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		e.closers = append(e.closers, db.Close)

		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxOpenConns)

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping postgres: %w", err)
		}

		repo := reportsPg.NewDailySessionsRepository(reportsPg.NewSQLDB(db))
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure postgres schema: %w", err)
		}
		e.sinks = append(e.sinks, repo)

		e.Summary = usecase.NewGetSessionsSummaryUseCase(
			reportsPg.NewSessionsSummaryRepository(reportsPg.NewSQLQueryDB(db)),
			cfg.Analytics.ViewID,
		)
	}

	log.WithField("sinks", e.SinkNames()).Info("report sinks configured")
	return nil
}
