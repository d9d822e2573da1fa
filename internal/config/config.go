package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"ga-report-exporter/internal/reports/core/domain"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Analytics AnalyticsConfig
	Output    OutputConfig
	S3        S3Config
	Postgres  PostgresConfig
	Server    ServerConfig
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

type AnalyticsConfig struct {
	KeyFile    string   `env:"GA_KEY_FILE" envDefault:"./client-secrets.json"`
	ViewID     string   `env:"GA_VIEW_ID,required"`
	StartDate  string   `env:"GA_START_DATE" envDefault:"2019-03-22"`
	EndDate    string   `env:"GA_END_DATE" envDefault:"today"`
	Metrics    []string `env:"GA_METRICS" envDefault:"sessions" envSeparator:","`
	Dimensions []string `env:"GA_DIMENSIONS" envDefault:"date" envSeparator:","`
	PageSize   int64    `env:"GA_PAGE_SIZE" envDefault:"0"`
	MaxPages   int      `env:"GA_MAX_PAGES" envDefault:"1000"`
}

type OutputConfig struct {
	Dir      string `env:"REPORT_OUTPUT_DIR" envDefault:"."`
	Prefix   string `env:"REPORT_FILE_PREFIX" envDefault:"nsw-election-to-now-sessions-by-day"`
	Disabled bool   `env:"REPORT_FILE_DISABLED" envDefault:"false"`
}

// S3Config enables the object sink when Bucket is set.
type S3Config struct {
	Bucket    string `env:"S3_BUCKET"`
	KeyPrefix string `env:"S3_KEY_PREFIX"`
	Region    string `env:"AWS_REGION"`
}

// PostgresConfig enables the archive sink when DSN is set.
type PostgresConfig struct {
	DSN          string `env:"POSTGRES_DSN"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"5"`
}

type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"2m"`
}

var (
	ErrInvalidPageSize = errors.New("GA_PAGE_SIZE must be between 0 and 100000")
	ErrInvalidMaxPages = errors.New("GA_MAX_PAGES must not be negative")
	ErrNoMetrics       = errors.New("GA_METRICS must name at least one metric")
	ErrArchiveShape    = errors.New("POSTGRES_DSN requires GA_METRICS to include sessions and GA_DIMENSIONS to include date")
	ErrInvalidPrefix   = errors.New("REPORT_FILE_PREFIX must be a bare file name")
)

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Analytics.PageSize < 0 || c.Analytics.PageSize > 100000 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Analytics.PageSize)
	}
	if c.Analytics.MaxPages < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxPages, c.Analytics.MaxPages)
	}
	if !slices.ContainsFunc(c.Analytics.Metrics, func(m string) bool { return strings.TrimSpace(m) != "" }) {
		return ErrNoMetrics
	}
	if strings.ContainsAny(c.Output.Prefix, `/\`) {
		return fmt.Errorf("%w: got %q", ErrInvalidPrefix, c.Output.Prefix)
	}
	if c.Postgres.DSN != "" &&
		(!hasColumn(c.Analytics.Metrics, domain.DefaultMetric) || !hasColumn(c.Analytics.Dimensions, domain.DefaultDimension)) {
		return ErrArchiveShape
	}
	return nil
}

// hasColumn reports whether name is listed, with or without the ga: namespace.
// An empty list means the aggregator default applies.
func hasColumn(names []string, name string) bool {
	if len(names) == 0 {
		return true
	}
	return slices.ContainsFunc(names, func(n string) bool {
		return strings.TrimPrefix(strings.TrimSpace(n), "ga:") == name
	})
}

// ReportConfig converts the analytics settings into the aggregator's config value.
func (c *Config) ReportConfig() domain.ReportConfig {
	return domain.ReportConfig{
		ViewID: c.Analytics.ViewID,
		DateRange: domain.DateRange{
			StartDate: c.Analytics.StartDate,
			EndDate:   c.Analytics.EndDate,
		},
		Metrics:    c.Analytics.Metrics,
		Dimensions: c.Analytics.Dimensions,
		PageSize:   c.Analytics.PageSize,
		MaxPages:   c.Analytics.MaxPages,
	}
}
