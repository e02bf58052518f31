package models

import (
	"time"
)

// Record categories as produced by the upstream classifier
const (
	RecordCategoryQuery = "query"
	RecordCategoryInfo  = "info"
	RecordCategorySpam  = "spam"
)

// Record priorities. Only query records carry a meaningful priority.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ClassifiedRecord is one classified email/query as written by the external
// classification agent. ResponseTimeHours, ToneScore and the quality flags
// are only present once a response has been analyzed.
type ClassifiedRecord struct {
	Timestamp          time.Time `json:"timestamp" bson:"timestamp"`
	Category           string    `json:"category" bson:"category"`
	Priority           string    `json:"priority" bson:"priority"`
	Responded          bool      `json:"responded" bson:"responded"`
	ResponseTimeHours  *float64  `json:"response_time_hours,omitempty" bson:"response_time_hours,omitempty"`
	ToneScore          *float64  `json:"tone_score,omitempty" bson:"tone_score,omitempty"` // 0-10
	FactualError       bool      `json:"factual_error,omitempty" bson:"factual_error,omitempty"`
	GuidelineViolation bool      `json:"guideline_violation,omitempty" bson:"guideline_violation,omitempty"`
	TopicLabel         string    `json:"topic_label" bson:"topic_label"`
}
