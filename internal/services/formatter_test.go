package services

import (
	"strings"
	"testing"

	"supportpulse-be/internal/models"

	"github.com/stretchr/testify/assert"
)

func formattedSample() *models.DailyReport {
	r := ZeroReport("2025-08-21")
	r.TotalEmails = 245
	r.QueriesCount = 189
	r.InfoCount = 40
	r.SpamCount = 16
	r.RespondedCount = 145
	r.PendingCount = 44
	r.OverallResponseRate = 76.7
	r.HighPriorityResponseRate = 52.2
	r.AvgResponseTime = 3.4
	r.Overdue24hrsCount = 7
	r.ToneScoreAvg = 8.2
	r.FactualAccuracyAvg = 94.1
	r.FactualErrorsDetected = 11
	r.GuidelinesScoreAvg = 91.3
	r.Priorities.High = models.PriorityBreakdown{Total: 23, Responded: 12, Pending: 11, ResponseRate: 52.2}
	r.Priorities.Medium = models.PriorityBreakdown{Total: 96, Responded: 80, Pending: 16, ResponseRate: 83.3}
	r.Priorities.Low = models.PriorityBreakdown{Total: 70, Responded: 53, Pending: 17, ResponseRate: 75.7}
	r.Alerts = []models.AlertRecord{
		{Severity: models.SeverityCritical, Category: models.CategorySLABreach, Message: "11 high-priority queries unresponded beyond 4 hours", CountOrAge: 11},
		{Severity: models.SeverityWarning, Category: models.CategoryToneViolation, Message: "3 responses scored below tone threshold 5.0", CountOrAge: 3},
	}
	r.AlertsCount = 2
	r.TopIssuesByPriority.High = []models.TopIssue{
		{Label: "refund delay", Count: 8},
		{Label: "billing dispute", Count: 5},
	}
	return r
}

func TestFormatAdminReportLayout(t *testing.T) {
	out := FormatAdminReport(formattedSample())

	assert.True(t, strings.HasPrefix(out, "📊 Support Performance [Date: 2025-08-21]"))

	for _, line := range []string{
		"📧 Total Emails Received: 245",
		"📊 Queries: 189 | Information: 40 | Spam: 16",
		"🔴 High Priority: 23 (12 responded, 11 pending)",
		"🟡 Medium Priority: 96 (80 responded, 16 pending)",
		"🟢 Low Priority: 70 (53 responded, 17 pending)",
		"📈 Overall Responded: 145/189 (76.7%)",
		"🔴 High Priority Response Rate: 52.2% ⚠",
		"⏱ Avg Response Time: 3.4 hours",
		"⏰ Overdue (24hrs): 7",
		"😊 Tone Score: 8.2/10 ✅",
		"✅ Factual Accuracy: 94.1% (11 errors detected)",
		"📋 Guidelines Compliance: 91.3%",
		"🔴 11 high-priority queries unresponded beyond 4 hours",
		"⚠ 3 responses scored below tone threshold 5.0",
		"1. refund delay (8 queries)",
		"2. billing dispute (5 queries)",
		"(No medium priority issues)",
		"(No low priority issues)",
	} {
		assert.Contains(t, out, line)
	}
}

func TestFormatAdminReportQuietDay(t *testing.T) {
	out := FormatAdminReport(ZeroReport("2025-08-22"))

	assert.Contains(t, out, "✅ No critical alerts")
	assert.Contains(t, out, "📧 Total Emails Received: 0")
	assert.Contains(t, out, "📈 Overall Responded: 0/0 (0%)")
	assert.Contains(t, out, "(No high priority issues)")
}

func TestFormatScoreDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "76.7", formatScore(76.7))
	assert.Equal(t, "0", formatScore(0))
	assert.Equal(t, "100", formatScore(100))
}

func TestSeverityMarks(t *testing.T) {
	assert.Equal(t, "🔴", severityMark(models.SeverityCritical))
	assert.Equal(t, "⚠", severityMark(models.SeverityWarning))
	assert.Equal(t, "ℹ", severityMark(models.SeverityInfo))
}
