package domain

// Report is one page (or the aggregate of all pages) of a reporting query.
// Data == nil means the upstream omitted the row container.
// NextPageToken == nil marks the terminal page.
type Report struct {
	ColumnHeader  *ColumnHeader `json:"columnHeader,omitempty"`
	Data          *ReportData   `json:"data,omitempty"`
	NextPageToken *string       `json:"nextPageToken,omitempty"`
}

type ColumnHeader struct {
	Dimensions []string `json:"dimensions,omitempty"`
	Metrics    []string `json:"metrics,omitempty"`
}

type ReportData struct {
	Rows     []Row          `json:"rows"`
	RowCount int64          `json:"rowCount,omitempty"`
	Totals   []MetricValues `json:"totals,omitempty"`
}

// Row holds dimension values and, per date range, the metric values.
type Row struct {
	Dimensions []string       `json:"dimensions"`
	Metrics    []MetricValues `json:"metrics"`
}

type MetricValues struct {
	Values []string `json:"values"`
}

// QueryResponse is the batch response; Reports[0] answers the single request.
type QueryResponse struct {
	Reports []*Report `json:"reports"`
}

// HasNextPage reports whether the upstream issued a continuation cursor.
func (r *Report) HasNextPage() bool {
	return r != nil && r.NextPageToken != nil
}

// RowsLen returns the number of rows, treating a missing container as empty.
func (r *Report) RowsLen() int {
	if r == nil || r.Data == nil {
		return 0
	}
	return len(r.Data.Rows)
}
