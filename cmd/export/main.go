package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"ga-report-exporter/internal/app"
	"ga-report-exporter/internal/config"

	"github.com/sirupsen/logrus"
)

// export runs one export and prints the response envelope to stdout.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build logger")
	}
	// stdout carries the envelope
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("export failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	exporter, err := app.NewExporter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer exporter.Close()

	res, err := exporter.UseCase.Execute(ctx)
	if err != nil {
		return err
	}

	return json.NewEncoder(os.Stdout).Encode(res.Response)
}
