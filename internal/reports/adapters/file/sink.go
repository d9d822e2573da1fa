package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ga-report-exporter/internal/reports/core/domain"
	"ga-report-exporter/internal/reports/core/ports"
)

const DefaultPrefix = "nsw-election-to-now-sessions-by-day"

// ReportFileSink writes each artifact to <dir>/<prefix>-<timestamp>.json.
// prefix is a bare file name; directories belong in dir.
type ReportFileSink struct {
	dir    string
	prefix string
}

func NewReportFileSink(dir, prefix string) *ReportFileSink {
	if dir == "" {
		dir = "."
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &ReportFileSink{dir: dir, prefix: prefix}
}

var _ ports.ReportSinkPort = (*ReportFileSink)(nil)

func (s *ReportFileSink) Name() string { return "file" }

func (s *ReportFileSink) Save(ctx context.Context, a *domain.Artifact) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(a.FileName(s.prefix)))

	if err := os.WriteFile(path, a.Body, 0o644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}

	return path, nil
}
