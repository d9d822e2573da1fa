package domain

const (
	DefaultMetric    = "sessions"
	DefaultDimension = "date"
)

type DateRange struct {
	StartDate string // YYYY-MM-DD or relative ("today", "7daysAgo")
	EndDate   string
}

// QueryRequest is the per-page request sent to the reporting service.
// Metric and dimension names are bare ("sessions"); the adapter namespaces them.
type QueryRequest struct {
	ViewID     string
	DateRange  DateRange
	Metrics    []string
	Dimensions []string
	PageToken  string // "" = first page
	PageSize   int64  // 0 = server default
}

// ReportConfig is the fixed configuration an aggregator is built with.
type ReportConfig struct {
	ViewID     string
	DateRange  DateRange
	Metrics    []string
	Dimensions []string
	PageSize   int64
	MaxPages   int // 0 = unlimited
}

// QueryFor builds a fresh request starting at cursor. Slices are copied so the
// request never aliases the config.
func (c ReportConfig) QueryFor(cursor string) QueryRequest {
	metrics := c.Metrics
	if len(metrics) == 0 {
		metrics = []string{DefaultMetric}
	}
	dimensions := c.Dimensions
	if len(dimensions) == 0 {
		dimensions = []string{DefaultDimension}
	}

	return QueryRequest{
		ViewID:     c.ViewID,
		DateRange:  c.DateRange,
		Metrics:    append([]string(nil), metrics...),
		Dimensions: append([]string(nil), dimensions...),
		PageToken:  cursor,
		PageSize:   c.PageSize,
	}
}
