package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "ga-report-exporter/internal/reports/adapters/http/fiber"
	"ga-report-exporter/internal/reports/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fake usecase implementing the interface that handler depends on.
type fakeExportUseCase struct {
	ExecuteFn func(ctx context.Context) (*domain.ExportResult, error)
	called    bool
}

func (f *fakeExportUseCase) Execute(ctx context.Context) (*domain.ExportResult, error) {
	f.called = true
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx)
	}
	return nil, nil
}

func setupApp(t *testing.T, uc httpadapter.ExportReportUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewReportHandler(uc)
	app.Post("/reports/sessions", h.RunSessionsExport)
	app.Get("/healthz", httpadapter.Health)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	return resp, body
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestRunSessionsExport_Success(t *testing.T) {
	reportJSON := `{"data":{"rows":[{"dimensions":["20190322"],"metrics":[{"values":["5"]}]}]}}`

	uc := &fakeExportUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.ExportResult, error) {
			return &domain.ExportResult{
				RunID: "run-1",
				Rows:  1,
				Response: domain.ProxyResponse{
					StatusCode: http.StatusOK,
					Body:       reportJSON,
				},
			}, nil
		},
	}

	app := setupApp(t, uc)

	resp, body := doRequest(t, app, http.MethodPost, "/reports/sessions")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.True(t, uc.called)
	assert.Equal(t, "run-1", resp.Header.Get("X-Export-Run-Id"))

	var envelope httpadapter.ProxyResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, 200, envelope.StatusCode)
	assert.JSONEq(t, reportJSON, envelope.Body)
}

// ------------------------------------------------------------
// UPSTREAM ERRORS -> 502
// ------------------------------------------------------------

func TestRunSessionsExport_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name  string
		ucErr error
	}{
		{"authentication", domain.ErrAuthentication},
		{"transport", fmt.Errorf("%w: quota", domain.ErrTransport)},
		{"malformed", domain.ErrMalformedUpstreamResponse},
		{"page_limit", domain.ErrPageLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeExportUseCase{
				ExecuteFn: func(ctx context.Context) (*domain.ExportResult, error) {
					return nil, tt.ucErr
				},
			}

			resp, body := doRequest(t, setupApp(t, uc), http.MethodPost, "/reports/sessions")
			require.Equal(t, http.StatusBadGateway, resp.StatusCode)

			var errResp httpadapter.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &errResp))
			assert.Equal(t, "upstream_error", errResp.Error)
		})
	}
}

// ------------------------------------------------------------
// OTHER ERRORS -> 500
// ------------------------------------------------------------

func TestRunSessionsExport_InternalError(t *testing.T) {
	uc := &fakeExportUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.ExportResult, error) {
			return nil, fmt.Errorf("%w: file: %w", domain.ErrPersistence, errors.New("disk full"))
		},
	}

	resp, body := doRequest(t, setupApp(t, uc), http.MethodPost, "/reports/sessions")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "internal_server_error", errResp.Error)
	assert.Empty(t, errResp.Message)
}

func TestRunSessionsExport_MethodNotAllowed(t *testing.T) {
	uc := &fakeExportUseCase{}

	resp, _ := doRequest(t, setupApp(t, uc), http.MethodGet, "/reports/sessions")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.False(t, uc.called)
}

func TestHealth(t *testing.T) {
	resp, body := doRequest(t, setupApp(t, &fakeExportUseCase{}), http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
