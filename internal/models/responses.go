package models

// ErrorResponse is the envelope for every JSON error the API returns.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

// Pagination carries page bookkeeping for list responses. NextPage and
// PrevPage are omitted at the edges rather than pointing out of range.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
	NextPage    *int `json:"next_page,omitempty"`
	PrevPage    *int `json:"prev_page,omitempty"`
	StartItem   int  `json:"start_item"`
	EndItem     int  `json:"end_item"`
}

// DateRange describes the effective date window of a filtered result set.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// RangeSummary aggregates the entire filtered range, not just one page.
type RangeSummary struct {
	TotalEmails     int       `json:"total_emails"`
	QueriesCount    int       `json:"queries_count"`
	AvgResponseRate float64   `json:"avg_response_rate"`
	AvgToneScore    float64   `json:"avg_tone_score"`
	AlertsCount     int       `json:"alerts_count"`
	DateRange       DateRange `json:"date_range"`
}

// ReportListResponse is the payload of GET /reports/list.
type ReportListResponse struct {
	Success    bool           `json:"success"`
	Reports    []*DailyReport `json:"reports"`
	Pagination Pagination     `json:"pagination"`
	Summary    RangeSummary   `json:"summary"`
}

// TrendDelta is the elementwise difference latest - comparison.
type TrendDelta struct {
	TotalEmails  int     `json:"total_emails"`
	ResponseRate float64 `json:"response_rate"`
	ToneScore    float64 `json:"tone_score"`
	AlertsCount  int     `json:"alerts_count"`
}

// LatestSummaryResponse is the payload of GET /reports/summary/latest.
// Trends and ComparisonDate are only present when a report strictly older
// than the latest one exists.
type LatestSummaryResponse struct {
	Success             bool        `json:"success"`
	HasData             bool        `json:"has_data"`
	Suggestion          string      `json:"suggestion,omitempty"`
	ReportDate          string      `json:"report_date,omitempty"`
	TotalEmails         int         `json:"total_emails"`
	QueriesCount        int         `json:"queries_count"`
	RespondedCount      int         `json:"responded_count"`
	PendingCount        int         `json:"pending_count"`
	OverallResponseRate float64     `json:"overall_response_rate"`
	ToneScoreAvg        float64     `json:"tone_score_avg"`
	AlertsCount         int         `json:"alerts_count"`
	ComparisonDate      string      `json:"comparison_date,omitempty"`
	Trends              *TrendDelta `json:"trends,omitempty"`
}

// HealthResponse is the payload of GET /reports/health. The endpoint always
// answers with a body, even when the store is unreachable.
type HealthResponse struct {
	Success           bool   `json:"success"`
	Status            string `json:"status"` // healthy or unhealthy
	DatabaseConnected bool   `json:"database_connected"`
	TotalReports      int64  `json:"total_reports"`
	LatestReportDate  string `json:"latest_report_date,omitempty"`
	Error             string `json:"error,omitempty"`
}

// GenerationAck acknowledges an asynchronous generation request.
type GenerationAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Date    string `json:"date,omitempty"`
	Status  string `json:"status"` // always "processing"
}
