package config

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars() {
	envVars := []string{
		"GA_KEY_FILE", "GA_VIEW_ID", "GA_START_DATE", "GA_END_DATE",
		"GA_METRICS", "GA_DIMENSIONS", "GA_PAGE_SIZE", "GA_MAX_PAGES",
		"REPORT_OUTPUT_DIR", "REPORT_FILE_PREFIX", "REPORT_FILE_DISABLED",
		"S3_BUCKET", "S3_KEY_PREFIX", "AWS_REGION",
		"POSTGRES_DSN", "POSTGRES_MAX_OPEN_CONNS",
		"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"LOG_LEVEL",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars()
	t.Setenv("GA_VIEW_ID", "114575665")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Analytics defaults
	assert.Equal(t, "./client-secrets.json", cfg.Analytics.KeyFile)
	assert.Equal(t, "114575665", cfg.Analytics.ViewID)
	assert.Equal(t, "2019-03-22", cfg.Analytics.StartDate)
	assert.Equal(t, "today", cfg.Analytics.EndDate)
	assert.Equal(t, []string{"sessions"}, cfg.Analytics.Metrics)
	assert.Equal(t, []string{"date"}, cfg.Analytics.Dimensions)
	assert.Equal(t, int64(0), cfg.Analytics.PageSize)
	assert.Equal(t, 1000, cfg.Analytics.MaxPages)

	// Output defaults
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "nsw-election-to-now-sessions-by-day", cfg.Output.Prefix)
	assert.False(t, cfg.Output.Disabled)

	// Optional sinks are off
	assert.Empty(t, cfg.S3.Bucket)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Equal(t, 5, cfg.Postgres.MaxOpenConns)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)

	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnvVars()
	t.Setenv("GA_VIEW_ID", "42")
	t.Setenv("GA_KEY_FILE", "/secrets/ga.json")
	t.Setenv("GA_START_DATE", "2020-01-01")
	t.Setenv("GA_END_DATE", "yesterday")
	t.Setenv("GA_METRICS", "sessions,users")
	t.Setenv("GA_DIMENSIONS", "date,country")
	t.Setenv("GA_PAGE_SIZE", "5000")
	t.Setenv("GA_MAX_PAGES", "0")
	t.Setenv("S3_BUCKET", "ga-exports")
	t.Setenv("S3_KEY_PREFIX", "sessions")
	t.Setenv("POSTGRES_DSN", "postgres://u:p@localhost/ga?sslmode=disable")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/secrets/ga.json", cfg.Analytics.KeyFile)
	assert.Equal(t, []string{"sessions", "users"}, cfg.Analytics.Metrics)
	assert.Equal(t, []string{"date", "country"}, cfg.Analytics.Dimensions)
	assert.Equal(t, int64(5000), cfg.Analytics.PageSize)
	assert.Equal(t, 0, cfg.Analytics.MaxPages)
	assert.Equal(t, "ga-exports", cfg.S3.Bucket)
	assert.Equal(t, "sessions", cfg.S3.KeyPrefix)
	assert.Equal(t, "postgres://u:p@localhost/ga?sslmode=disable", cfg.Postgres.DSN)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.LogLevel)

	rc := cfg.ReportConfig()
	assert.Equal(t, "42", rc.ViewID)
	assert.Equal(t, "2020-01-01", rc.DateRange.StartDate)
	assert.Equal(t, "yesterday", rc.DateRange.EndDate)
	assert.Equal(t, []string{"sessions", "users"}, rc.Metrics)
	assert.Equal(t, int64(5000), rc.PageSize)
	assert.Equal(t, 0, rc.MaxPages)
}

func TestLoad_MissingViewID(t *testing.T) {
	clearEnvVars()

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "GA_VIEW_ID")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"page_size_negative", "GA_PAGE_SIZE", "-1", ErrInvalidPageSize},
		{"page_size_too_big", "GA_PAGE_SIZE", "100001", ErrInvalidPageSize},
		{"max_pages_negative", "GA_MAX_PAGES", "-5", ErrInvalidMaxPages},
		{"metrics_blank", "GA_METRICS", ",", ErrNoMetrics},
		{"prefix_with_directory", "REPORT_FILE_PREFIX", "daily/ga", ErrInvalidPrefix},
		{"prefix_with_backslash", "REPORT_FILE_PREFIX", `daily\ga`, ErrInvalidPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars()
			t.Setenv("GA_VIEW_ID", "114575665")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_NoMetrics(t *testing.T) {
	cfg := &Config{}
	cfg.Analytics.ViewID = "114575665"

	require.ErrorIs(t, cfg.Validate(), ErrNoMetrics)
}

func TestLoad_PostgresArchiveShape(t *testing.T) {
	tests := []struct {
		name       string
		metrics    string
		dimensions string
		want       error
	}{
		{"defaults", "sessions", "date", nil},
		{"sessions_not_first", "users,sessions", "country,date", nil},
		{"namespaced", "ga:sessions", "ga:date", nil},
		{"no_sessions", "users", "date", ErrArchiveShape},
		{"no_date", "sessions", "country", ErrArchiveShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars()
			t.Setenv("GA_VIEW_ID", "114575665")
			t.Setenv("POSTGRES_DSN", "postgres://u:p@localhost/ga?sslmode=disable")
			t.Setenv("GA_METRICS", tt.metrics)
			t.Setenv("GA_DIMENSIONS", tt.dimensions)

			_, err := Load()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_UnparsableDuration(t *testing.T) {
	clearEnvVars()
	t.Setenv("GA_VIEW_ID", "114575665")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	log, err := newLogger("warn", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("dropped")
	log.WithField("run_id", "run-1").Warn("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "run-1", entry["run_id"])
	assert.Equal(t, "warning", entry["level"])
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger("loud")
	require.Error(t, err)
}
