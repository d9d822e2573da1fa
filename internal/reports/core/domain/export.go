package domain

import (
	"fmt"
	"time"
)

// Artifact is the serialised aggregate handed to every sink.
type Artifact struct {
	RunID     string
	ViewID    string
	CreatedAt time.Time
	Body      []byte
	Report    *Report
}

// ProxyResponse is the success envelope returned to the invoker.
type ProxyResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type ExportResult struct {
	RunID    string
	Rows     int
	Report   *Report
	Response ProxyResponse
}

// FileName returns "<prefix>-<unix seconds>.<micros>.json", the artifact name
// shared by every file-like sink.
func (a *Artifact) FileName(prefix string) string {
	t := a.CreatedAt
	return fmt.Sprintf("%s-%d.%06d.json", prefix, t.Unix(), t.Nanosecond()/int(time.Microsecond))
}
