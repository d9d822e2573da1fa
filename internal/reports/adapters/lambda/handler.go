package lambda

import (
	"context"

	"ga-report-exporter/internal/reports/core/domain"

	"github.com/aws/aws-lambda-go/events"
)

type ExportReportUseCase interface {
	Execute(ctx context.Context) (*domain.ExportResult, error)
}

type Handler struct {
	uc ExportReportUseCase
}

func NewHandler(uc ExportReportUseCase) *Handler {
	return &Handler{uc: uc}
}

// Handle ignores the proxy event. Failures are returned to the runtime
// unchanged; only a successful export produces a response envelope.
func (h *Handler) Handle(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	res, err := h.uc.Execute(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: res.Response.StatusCode,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			"X-Export-Run-Id": res.RunID,
		},
		Body: res.Response.Body,
	}, nil
}
