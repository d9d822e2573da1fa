package analytics

import (
	"context"
	"fmt"
	"os"

	"ga-report-exporter/internal/reports/core/domain"

	"golang.org/x/oauth2/google"
	analyticsreporting "google.golang.org/api/analyticsreporting/v4"
	"google.golang.org/api/option"
)

// NewReportingService authenticates with a service-account key file and
// returns a read-only Reporting API v4 service. Extra options are applied
// after the credentialed HTTP client (e.g. a custom endpoint).
func NewReportingService(ctx context.Context, keyFile string, opts ...option.ClientOption) (*analyticsreporting.Service, error) {
	key, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read key file: %w", domain.ErrAuthentication, err)
	}

	conf, err := google.JWTConfigFromJSON(key, analyticsreporting.AnalyticsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse key file %s: %w", domain.ErrAuthentication, keyFile, err)
	}

	all := append([]option.ClientOption{option.WithHTTPClient(conf.Client(ctx))}, opts...)

	svc, err := analyticsreporting.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}

	return svc, nil
}
