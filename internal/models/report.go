package models

import (
	"time"
)

// Alert severities
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Alert categories
const (
	CategorySLABreach     = "sla_breach"
	CategoryAgingQuery    = "aging_query"
	CategoryFactualError  = "factual_error"
	CategoryToneViolation = "tone_violation"
)

// AlertRecord is one threshold-breaching condition detected on a day's
// metrics. CountOrAge carries the magnitude that tripped the rule: a count
// for count-based rules, an age in hours for age-based ones.
type AlertRecord struct {
	Severity   string  `json:"severity" bson:"severity"`
	Category   string  `json:"category" bson:"category"`
	Message    string  `json:"message" bson:"message"`
	CountOrAge float64 `json:"count_or_age" bson:"count_or_age"`
}

// TopIssue is a ranked topic label within a priority bucket.
type TopIssue struct {
	Label string `json:"label" bson:"label"`
	Count int    `json:"count" bson:"count"`
}

// PriorityBreakdown holds per-bucket response figures for one priority.
type PriorityBreakdown struct {
	Total        int     `json:"total" bson:"total"`
	Responded    int     `json:"responded" bson:"responded"`
	Pending      int     `json:"pending" bson:"pending"`
	ResponseRate float64 `json:"response_rate" bson:"response_rate"`
}

// PrioritySet groups the three priority buckets.
type PrioritySet struct {
	High   PriorityBreakdown `json:"high" bson:"high"`
	Medium PriorityBreakdown `json:"medium" bson:"medium"`
	Low    PriorityBreakdown `json:"low" bson:"low"`
}

// TopIssueSet groups ranked issues per priority bucket.
type TopIssueSet struct {
	High   []TopIssue `json:"high" bson:"high"`
	Medium []TopIssue `json:"medium" bson:"medium"`
	Low    []TopIssue `json:"low" bson:"low"`
}

// DailyReport is the durable per-date report entity. ReportDate
// (YYYY-MM-DD) doubles as the document key, which gives the store its
// one-report-per-date guarantee.
type DailyReport struct {
	ReportDate string `json:"report_date" bson:"_id"`

	TotalEmails  int `json:"total_emails" bson:"total_emails"`
	QueriesCount int `json:"queries_count" bson:"queries_count"`
	InfoCount    int `json:"info_count" bson:"info_count"`
	SpamCount    int `json:"spam_count" bson:"spam_count"`

	HighPriorityCount   int `json:"high_priority_count" bson:"high_priority_count"`
	MediumPriorityCount int `json:"medium_priority_count" bson:"medium_priority_count"`
	LowPriorityCount    int `json:"low_priority_count" bson:"low_priority_count"`

	RespondedCount int `json:"responded_count" bson:"responded_count"`
	PendingCount   int `json:"pending_count" bson:"pending_count"`

	OverallResponseRate      float64 `json:"overall_response_rate" bson:"overall_response_rate"`
	HighPriorityResponseRate float64 `json:"high_priority_response_rate" bson:"high_priority_response_rate"`

	AvgResponseTime    float64 `json:"avg_response_time" bson:"avg_response_time"` // hours
	ToneScoreAvg       float64 `json:"tone_score_avg" bson:"tone_score_avg"`       // 0-10
	FactualAccuracyAvg float64 `json:"factual_accuracy_avg" bson:"factual_accuracy_avg"`
	GuidelinesScoreAvg float64 `json:"guidelines_score_avg" bson:"guidelines_score_avg"`

	AlertsCount           int `json:"alerts_count" bson:"alerts_count"`
	Overdue24hrsCount     int `json:"overdue_24hrs_count" bson:"overdue_24hrs_count"`
	Overdue48hrsCount     int `json:"overdue_48hrs_count" bson:"overdue_48hrs_count"`
	FactualErrorsDetected int `json:"factual_errors_detected" bson:"factual_errors_detected"`
	ToneViolationsCount   int `json:"tone_violations_count" bson:"tone_violations_count"`

	Priorities          PrioritySet   `json:"priorities" bson:"priorities"`
	Alerts              []AlertRecord `json:"alerts" bson:"alerts"`
	TopIssuesByPriority TopIssueSet   `json:"top_issues_by_priority" bson:"top_issues_by_priority"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// SchedulerStatus is a point-in-time snapshot of the daily scheduler. It is
// process state, never persisted.
type SchedulerStatus struct {
	State            string `json:"state"` // STOPPED or RUNNING
	Timezone         string `json:"timezone"`
	Schedule         string `json:"schedule"`
	NextExecutionUTC string `json:"next_execution_utc,omitempty"`
	NextExecutionIST string `json:"next_execution_ist,omitempty"`
	JobCount         int    `json:"job_count"`
	LastRunAt        string `json:"last_run_at,omitempty"`
	LastRunStatus    string `json:"last_run_status,omitempty"`
}
