package services

import (
	"fmt"
	"sort"
	"time"

	"supportpulse-be/config"
	"supportpulse-be/internal/models"
	"supportpulse-be/internal/utils"

	"github.com/sahilm/fuzzy"
)

// AlertDetector evaluates threshold rules over an aggregated report and its
// underlying records, producing the alert list, the ranked top-issue
// buckets, and the derived alerting counters. Each rule is independently
// evaluable; thresholds come from configuration.
type AlertDetector struct {
	cfg *config.Config
	now func() time.Time
}

func NewAlertDetector(cfg *config.Config) *AlertDetector {
	return &AlertDetector{cfg: cfg, now: time.Now}
}

// Detect enriches report in place.
func (d *AlertDetector) Detect(report *models.DailyReport, records []*models.ClassifiedRecord) {
	now := d.now()
	alerts := []models.AlertRecord{}

	var (
		slaBreached    int
		agingCount     int
		agingOldest    float64
		factualErrors  int
		toneViolations int
	)

	for _, rec := range records {
		age := now.Sub(rec.Timestamp).Hours()

		if NormalizeCategory(rec.Category) == models.RecordCategoryQuery && !rec.Responded {
			if age > d.cfg.OverdueHours {
				report.Overdue24hrsCount++
			}
			if age > d.cfg.AgingQueryHours {
				report.Overdue48hrsCount++
				if d.isSensitiveTopic(rec.TopicLabel) {
					agingCount++
					if age > agingOldest {
						agingOldest = age
					}
				}
			}
			if NormalizePriority(rec.Priority) == models.PriorityHigh && age > d.cfg.SLABreachHours {
				slaBreached++
			}
		}

		if rec.Responded && rec.FactualError {
			factualErrors++
		}
		if rec.ToneScore != nil && *rec.ToneScore < d.cfg.ToneScoreCutoff {
			toneViolations++
		}
	}

	if slaBreached > 0 {
		alerts = append(alerts, models.AlertRecord{
			Severity:   models.SeverityCritical,
			Category:   models.CategorySLABreach,
			Message:    fmt.Sprintf("%d high priority queries unresponded beyond %g hours", slaBreached, d.cfg.SLABreachHours),
			CountOrAge: float64(slaBreached),
		})
	}

	if report.HighPriorityCount > 0 && report.HighPriorityResponseRate < d.cfg.ResponseRateWarnPct {
		alerts = append(alerts, models.AlertRecord{
			Severity:   models.SeverityWarning,
			Category:   models.CategorySLABreach,
			Message:    fmt.Sprintf("high priority response rate at %.1f%%", report.HighPriorityResponseRate),
			CountOrAge: report.HighPriorityResponseRate,
		})
	}

	if agingCount > 0 {
		alerts = append(alerts, models.AlertRecord{
			Severity:   models.SeverityWarning,
			Category:   models.CategoryAgingQuery,
			Message:    fmt.Sprintf("%d sensitive-topic queries unresponded beyond %g hours", agingCount, d.cfg.AgingQueryHours),
			CountOrAge: round1(agingOldest),
		})
	}

	if factualErrors > 0 {
		alerts = append(alerts, models.AlertRecord{
			Severity:   models.SeverityCritical,
			Category:   models.CategoryFactualError,
			Message:    fmt.Sprintf("%d responses with incorrect facts detected", factualErrors),
			CountOrAge: float64(factualErrors),
		})
	}

	if toneViolations > 0 {
		alerts = append(alerts, models.AlertRecord{
			Severity:   models.SeverityWarning,
			Category:   models.CategoryToneViolation,
			Message:    fmt.Sprintf("%d responses below tone threshold of %g/10", toneViolations, d.cfg.ToneScoreCutoff),
			CountOrAge: float64(toneViolations),
		})
	}

	report.FactualErrorsDetected = factualErrors
	report.ToneViolationsCount = toneViolations
	report.Alerts = alerts
	report.AlertsCount = len(alerts)
	report.TopIssuesByPriority = d.topIssues(records)
}

// isSensitiveTopic fuzzy-matches a topic label against the configured
// sensitive-topic list, so "Refund request delayed" still matches "refund".
func (d *AlertDetector) isSensitiveTopic(label string) bool {
	norm := utils.NormalizeTopic(label)
	if norm == "" {
		return false
	}
	for _, topic := range d.cfg.SensitiveTopics {
		if len(fuzzy.Find(topic, []string{norm})) > 0 {
			return true
		}
	}
	return false
}

type issueCounter struct {
	label string
	count int
	order int
}

// topIssues groups query records by normalized topic label within each
// priority bucket, ranked by descending count with ties broken by
// first-seen order, capped at the configured top-N.
func (d *AlertDetector) topIssues(records []*models.ClassifiedRecord) models.TopIssueSet {
	buckets := map[string]map[string]*issueCounter{
		models.PriorityHigh:   {},
		models.PriorityMedium: {},
		models.PriorityLow:    {},
	}
	seen := 0

	for _, rec := range records {
		if NormalizeCategory(rec.Category) != models.RecordCategoryQuery {
			continue
		}
		key := utils.NormalizeTopic(rec.TopicLabel)
		if key == "" {
			continue
		}
		bucket := buckets[NormalizePriority(rec.Priority)]
		if c, ok := bucket[key]; ok {
			c.count++
		} else {
			bucket[key] = &issueCounter{
				label: utils.SanitizeText(rec.TopicLabel),
				count: 1,
				order: seen,
			}
			seen++
		}
	}

	return models.TopIssueSet{
		High:   d.rankIssues(buckets[models.PriorityHigh]),
		Medium: d.rankIssues(buckets[models.PriorityMedium]),
		Low:    d.rankIssues(buckets[models.PriorityLow]),
	}
}

func (d *AlertDetector) rankIssues(bucket map[string]*issueCounter) []models.TopIssue {
	counters := make([]*issueCounter, 0, len(bucket))
	for _, c := range bucket {
		counters = append(counters, c)
	}
	sort.Slice(counters, func(i, j int) bool {
		if counters[i].count != counters[j].count {
			return counters[i].count > counters[j].count
		}
		return counters[i].order < counters[j].order
	})

	limit := d.cfg.TopIssuesLimit
	if limit <= 0 || limit > len(counters) {
		limit = len(counters)
	}

	issues := make([]models.TopIssue, 0, limit)
	for _, c := range counters[:limit] {
		issues = append(issues, models.TopIssue{Label: c.label, Count: c.count})
	}
	return issues
}
