package services

import (
	"errors"
	"math"
	"strings"

	"supportpulse-be/internal/models"
)

// ErrNoData signals that no classified records exist for the requested
// date. The caller decides whether that means a zeroed report or a failure.
var ErrNoData = errors.New("no classified records for date")

// MetricsAggregator reduces one IST day of classified records into a
// DailyReport. It is pure: no clock, no persistence, deterministic output.
// Alert and top-issue fields are left empty for the AlertDetector.
type MetricsAggregator struct{}

func NewMetricsAggregator() *MetricsAggregator {
	return &MetricsAggregator{}
}

func (a *MetricsAggregator) Aggregate(date string, records []*models.ClassifiedRecord) (*models.DailyReport, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	report := ZeroReport(date)
	report.TotalEmails = len(records)

	var (
		respTimeSum   float64
		respTimeCount int
		toneSum       float64
		toneCount     int
		accurate      int
		compliant     int
		analyzed      int
	)

	for _, rec := range records {
		switch NormalizeCategory(rec.Category) {
		case models.RecordCategoryInfo:
			report.InfoCount++
			continue
		case models.RecordCategorySpam:
			report.SpamCount++
			continue
		}

		// Query record: the only kind that carries priority and response
		// status.
		report.QueriesCount++

		bucket := bucketFor(report, rec.Priority)
		bucket.Total++
		if rec.Responded {
			bucket.Responded++
			report.RespondedCount++
			if rec.ResponseTimeHours != nil {
				respTimeSum += *rec.ResponseTimeHours
				respTimeCount++
			}
			analyzed++
			if !rec.FactualError {
				accurate++
			}
			if !rec.GuidelineViolation {
				compliant++
			}
		} else {
			bucket.Pending++
			report.PendingCount++
		}
		if rec.ToneScore != nil {
			toneSum += *rec.ToneScore
			toneCount++
		}
	}

	report.HighPriorityCount = report.Priorities.High.Total
	report.MediumPriorityCount = report.Priorities.Medium.Total
	report.LowPriorityCount = report.Priorities.Low.Total

	report.Priorities.High.ResponseRate = rate(report.Priorities.High.Responded, report.Priorities.High.Total)
	report.Priorities.Medium.ResponseRate = rate(report.Priorities.Medium.Responded, report.Priorities.Medium.Total)
	report.Priorities.Low.ResponseRate = rate(report.Priorities.Low.Responded, report.Priorities.Low.Total)

	report.OverallResponseRate = rate(report.RespondedCount, report.QueriesCount)
	report.HighPriorityResponseRate = report.Priorities.High.ResponseRate

	report.AvgResponseTime = mean(respTimeSum, respTimeCount)
	report.ToneScoreAvg = mean(toneSum, toneCount)
	report.FactualAccuracyAvg = rate(accurate, analyzed)
	report.GuidelinesScoreAvg = rate(compliant, analyzed)

	return report, nil
}

// ZeroReport builds an empty but well-formed report for a date, used when a
// day has no records so the date is still queryable after generation runs.
func ZeroReport(date string) *models.DailyReport {
	return &models.DailyReport{
		ReportDate: date,
		Alerts:     []models.AlertRecord{},
		TopIssuesByPriority: models.TopIssueSet{
			High:   []models.TopIssue{},
			Medium: []models.TopIssue{},
			Low:    []models.TopIssue{},
		},
	}
}

// NormalizeCategory folds classifier category spellings onto the closed
// query/info/spam set. Unknown categories count as queries so they are
// never silently dropped from response tracking.
func NormalizeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "info", "information":
		return models.RecordCategoryInfo
	case "spam":
		return models.RecordCategorySpam
	default:
		return models.RecordCategoryQuery
	}
}

// NormalizePriority folds classifier priority spellings onto high/medium/low,
// defaulting to medium.
func NormalizePriority(priority string) string {
	p := strings.ToLower(priority)
	switch {
	case strings.Contains(p, "high"):
		return models.PriorityHigh
	case strings.Contains(p, "low"):
		return models.PriorityLow
	default:
		return models.PriorityMedium
	}
}

func bucketFor(report *models.DailyReport, priority string) *models.PriorityBreakdown {
	switch NormalizePriority(priority) {
	case models.PriorityHigh:
		return &report.Priorities.High
	case models.PriorityLow:
		return &report.Priorities.Low
	default:
		return &report.Priorities.Medium
	}
}

// rate is responded/total as a percentage, rounded to one decimal and
// clamped to [0,100]. An empty denominator is defined as 0.
func rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	r := round1(float64(part) / float64(total) * 100)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

func mean(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return round1(sum / float64(count))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
