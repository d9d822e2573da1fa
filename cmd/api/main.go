package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ga-report-exporter/internal/app"
	"ga-report-exporter/internal/config"
	reportsHttp "ga-report-exporter/internal/reports/adapters/http/fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "ga-report-exporter/docs"
)

// @title GA Report Exporter API
// @version 1.0
// @description Exports paginated Google Analytics session reports as a single aggregated report.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build logger")
	}

	// Analytics client + sinks
	exporter, err := app.NewExporter(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialise exporter")
	}
	defer exporter.Close()

	// HTTP (Fiber) app + handlers
	server := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		AppName:      "GA Report Exporter",
	})

	reportHandler := reportsHttp.NewReportHandler(exporter.UseCase)
	server.Post("/reports/sessions", reportHandler.RunSessionsExport)
	if exporter.Summary != nil {
		summaryHandler := reportsHttp.NewSummaryHandler(exporter.Summary)
		server.Get("/reports/sessions/summary", summaryHandler.GetSessionsSummary)
	}
	server.Get("/healthz", reportsHttp.Health)

	// Swagger
	server.Get("/docs/*", fiberSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := server.Listen(addr); err != nil {
			log.WithError(err).Warn("fiber stopped")
		}
	}()

	log.WithField("addr", addr).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}

	log.Info("server exiting")
}
