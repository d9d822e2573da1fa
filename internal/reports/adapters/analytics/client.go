package analytics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ga-report-exporter/internal/reports/core/domain"
	"ga-report-exporter/internal/reports/core/ports"

	"golang.org/x/oauth2"
	analyticsreporting "google.golang.org/api/analyticsreporting/v4"
	"google.golang.org/api/googleapi"
)

const namespace = "ga:"

type ReportingClient struct {
	svc *analyticsreporting.Service
}

func NewReportingClient(svc *analyticsreporting.Service) *ReportingClient {
	return &ReportingClient{svc: svc}
}

var _ ports.ReportQueryPort = (*ReportingClient)(nil)

func (c *ReportingClient) BatchGet(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
	resp, err := c.svc.Reports.BatchGet(toWireRequest(req)).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}

	return fromWireResponse(resp), nil
}

func classify(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrTransport, err)
}

func toWireRequest(req domain.QueryRequest) *analyticsreporting.GetReportsRequest {
	metrics := make([]*analyticsreporting.Metric, 0, len(req.Metrics))
	for _, m := range req.Metrics {
		metrics = append(metrics, &analyticsreporting.Metric{Expression: qualify(m)})
	}

	dimensions := make([]*analyticsreporting.Dimension, 0, len(req.Dimensions))
	for _, d := range req.Dimensions {
		dimensions = append(dimensions, &analyticsreporting.Dimension{Name: qualify(d)})
	}

	return &analyticsreporting.GetReportsRequest{
		ReportRequests: []*analyticsreporting.ReportRequest{
			{
				ViewId: req.ViewID,
				DateRanges: []*analyticsreporting.DateRange{
					{StartDate: req.DateRange.StartDate, EndDate: req.DateRange.EndDate},
				},
				Metrics:    metrics,
				Dimensions: dimensions,
				PageToken:  req.PageToken,
				PageSize:   req.PageSize,
			},
		},
	}
}

func qualify(name string) string {
	if strings.HasPrefix(name, namespace) {
		return name
	}
	return namespace + name
}

func fromWireResponse(resp *analyticsreporting.GetReportsResponse) *domain.QueryResponse {
	out := &domain.QueryResponse{Reports: make([]*domain.Report, 0, len(resp.Reports))}
	for _, r := range resp.Reports {
		if r == nil {
			continue
		}
		out.Reports = append(out.Reports, fromWireReport(r))
	}
	return out
}

func fromWireReport(r *analyticsreporting.Report) *domain.Report {
	report := &domain.Report{}

	if r.ColumnHeader != nil {
		header := &domain.ColumnHeader{Dimensions: r.ColumnHeader.Dimensions}
		if r.ColumnHeader.MetricHeader != nil {
			for _, e := range r.ColumnHeader.MetricHeader.MetricHeaderEntries {
				header.Metrics = append(header.Metrics, e.Name)
			}
		}
		report.ColumnHeader = header
	}

	if r.Data != nil {
		data := &domain.ReportData{
			Rows:     make([]domain.Row, 0, len(r.Data.Rows)),
			RowCount: r.Data.RowCount,
			Totals:   fromWireValues(r.Data.Totals),
		}
		for _, row := range r.Data.Rows {
			if row == nil {
				continue
			}
			data.Rows = append(data.Rows, domain.Row{
				Dimensions: row.Dimensions,
				Metrics:    fromWireValues(row.Metrics),
			})
		}
		report.Data = data
	}

	if r.NextPageToken != "" {
		token := r.NextPageToken
		report.NextPageToken = &token
	}

	return report
}

func fromWireValues(in []*analyticsreporting.DateRangeValues) []domain.MetricValues {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.MetricValues, 0, len(in))
	for _, v := range in {
		if v == nil {
			continue
		}
		out = append(out, domain.MetricValues{Values: v.Values})
	}
	return out
}
