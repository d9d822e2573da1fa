package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ga-report-exporter/internal/reports/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFileSink_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "reports")
	sink := NewReportFileSink(dir, "")

	a := &domain.Artifact{
		RunID:     "run-1",
		CreatedAt: time.Unix(1553509800, 123456789),
		Body:      []byte(`{"data":{"rows":[]}}`),
	}

	path, err := sink.Save(context.Background(), a)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "nsw-election-to-now-sessions-by-day-1553509800.123456.json"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, a.Body, got)
}

func TestReportFileSink_CustomPrefix(t *testing.T) {
	dir := t.TempDir()
	sink := NewReportFileSink(dir, "sessions")

	path, err := sink.Save(context.Background(), &domain.Artifact{
		CreatedAt: time.Unix(100, 0),
		Body:      []byte(`{}`),
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sessions-100.000000.json"), path)
	assert.Equal(t, "file", sink.Name())
}

func TestReportFileSink_UnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	sink := NewReportFileSink(filepath.Join(blocker, "sub"), "")

	_, err := sink.Save(context.Background(), &domain.Artifact{Body: []byte(`{}`)})
	require.Error(t, err)
}
