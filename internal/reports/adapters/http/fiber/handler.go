package fiber

import (
	"context"
	"errors"
	"net/http"

	"ga-report-exporter/internal/reports/core/domain"

	"github.com/gofiber/fiber/v2"
)

const runIDHeader = "X-Export-Run-Id"

type ExportReportUseCase interface {
	Execute(ctx context.Context) (*domain.ExportResult, error)
}

type ReportHandler struct {
	uc ExportReportUseCase
}

func NewReportHandler(uc ExportReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// RunSessionsExport godoc
// @Summary Export daily sessions
// @Description Fetches every page of the daily sessions report, persists it and returns it in a proxy envelope
// @Tags Reports
// @Produce json
// @Success 200 {object} ProxyResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/sessions [post]
func (h *ReportHandler) RunSessionsExport(c *fiber.Ctx) error {
	res, err := h.uc.Execute(c.UserContext())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthentication),
			errors.Is(err, domain.ErrTransport),
			errors.Is(err, domain.ErrMalformedUpstreamResponse),
			errors.Is(err, domain.ErrPageLimitExceeded):
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error:   "upstream_error",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	c.Set(runIDHeader, res.RunID)

	return c.Status(http.StatusOK).JSON(ProxyResponse{
		StatusCode: res.Response.StatusCode,
		Body:       res.Response.Body,
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{Status: "ok"})
}
