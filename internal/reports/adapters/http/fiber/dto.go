package fiber

// ProxyResponse is the invocation envelope returned on success.
// @Description API Gateway style envelope; body holds the aggregated report as a JSON string
type ProxyResponse struct {
	StatusCode int    `json:"statusCode" example:"200"`
	Body       string `json:"body" example:"{\"data\":{\"rows\":[]}}"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"upstream_error"`
	Message string `json:"message,omitempty" example:"analytics query failed"`
}

type SessionsBucketResponse struct {
	Key      string `json:"key" example:"2019-03-01"`
	Sessions int64  `json:"sessions" example:"700"`
	Days     int64  `json:"days" example:"10"`
}

type SessionsSummaryResponse struct {
	ViewID        string                   `json:"view_id" example:"114575665"`
	From          string                   `json:"from" example:"2019-03-22"`
	To            string                   `json:"to" example:"2019-04-30"`
	TotalSessions int64                    `json:"total_sessions" example:"1234"`
	Days          int64                    `json:"days" example:"40"`
	GroupBy       string                   `json:"group_by,omitempty" example:"month"`
	Groups        []SessionsBucketResponse `json:"groups,omitempty"`
}
