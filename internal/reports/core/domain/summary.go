package domain

// SessionsSummary aggregates archived daily session counts for one view.
type SessionsSummary struct {
	ViewID        string
	From          string // YYYY-MM-DD
	To            string // YYYY-MM-DD
	TotalSessions int64
	Days          int64

	GroupBy string // "", "week", "month"
	Groups  []SessionsBucket
}

type SessionsBucket struct {
	Key      string // bucket start, YYYY-MM-DD
	Sessions int64
	Days     int64
}
