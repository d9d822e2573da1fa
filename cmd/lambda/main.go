package main

import (
	"context"

	"ga-report-exporter/internal/app"
	"ga-report-exporter/internal/config"
	reportsLambda "ga-report-exporter/internal/reports/adapters/lambda"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build logger")
	}

	// Built once per cold start and reused across invocations.
	exporter, err := app.NewExporter(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialise exporter")
	}

	// StartWithOptions never returns, so the pool is closed on SIGTERM.
	lambda.StartWithOptions(
		reportsLambda.NewHandler(exporter.UseCase).Handle,
		lambda.WithEnableSIGTERM(func() {
			if err := exporter.Close(); err != nil {
				log.WithError(err).Warn("failed to close exporter")
			}
		}),
	)
}
