package services

import (
	"fmt"
	"strconv"
	"strings"

	"supportpulse-be/internal/models"
)

// FormatAdminReport renders a report into the fixed-layout admin text
// block. Pure formatting: every figure comes from the stored report.
func FormatAdminReport(r *models.DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Support Performance [Date: %s]\n\n", r.ReportDate)

	fmt.Fprintf(&b, "Volume Metrics:\n")
	fmt.Fprintf(&b, "📧 Total Emails Received: %d\n", r.TotalEmails)
	fmt.Fprintf(&b, "📊 Queries: %d | Information: %d | Spam: %d\n\n", r.QueriesCount, r.InfoCount, r.SpamCount)

	fmt.Fprintf(&b, "Priority Breakdown:\n")
	fmt.Fprintf(&b, "🔴 High Priority: %d (%d responded, %d pending)\n",
		r.Priorities.High.Total, r.Priorities.High.Responded, r.Priorities.High.Pending)
	fmt.Fprintf(&b, "🟡 Medium Priority: %d (%d responded, %d pending)\n",
		r.Priorities.Medium.Total, r.Priorities.Medium.Responded, r.Priorities.Medium.Pending)
	fmt.Fprintf(&b, "🟢 Low Priority: %d (%d responded, %d pending)\n\n",
		r.Priorities.Low.Total, r.Priorities.Low.Responded, r.Priorities.Low.Pending)

	fmt.Fprintf(&b, "Response Metrics:\n")
	fmt.Fprintf(&b, "📈 Overall Responded: %d/%d (%s%%)\n", r.RespondedCount, r.QueriesCount, formatScore(r.OverallResponseRate))
	fmt.Fprintf(&b, "🔴 High Priority Response Rate: %s%% %s\n", formatScore(r.HighPriorityResponseRate), rateMark(r.HighPriorityResponseRate))
	fmt.Fprintf(&b, "⏱ Avg Response Time: %s hours\n", formatScore(r.AvgResponseTime))
	fmt.Fprintf(&b, "⏰ Overdue (24hrs): %d\n\n", r.Overdue24hrsCount)

	fmt.Fprintf(&b, "Quality Metrics:\n")
	fmt.Fprintf(&b, "😊 Tone Score: %s/10 %s\n", formatScore(r.ToneScoreAvg), toneMark(r.ToneScoreAvg))
	fmt.Fprintf(&b, "✅ Factual Accuracy: %s%% (%d errors detected)\n", formatScore(r.FactualAccuracyAvg), r.FactualErrorsDetected)
	fmt.Fprintf(&b, "📋 Guidelines Compliance: %s%%\n\n", formatScore(r.GuidelinesScoreAvg))

	fmt.Fprintf(&b, "Critical Alerts:")
	if len(r.Alerts) == 0 {
		fmt.Fprintf(&b, "\n✅ No critical alerts")
	} else {
		for _, a := range r.Alerts {
			fmt.Fprintf(&b, "\n%s %s", severityMark(a.Severity), a.Message)
		}
	}

	fmt.Fprintf(&b, "\n\nTop Issues by Priority:")
	writeIssues(&b, "High", r.TopIssuesByPriority.High)
	writeIssues(&b, "Medium", r.TopIssuesByPriority.Medium)
	writeIssues(&b, "Low", r.TopIssuesByPriority.Low)

	return b.String()
}

func writeIssues(b *strings.Builder, priority string, issues []models.TopIssue) {
	fmt.Fprintf(b, "\n\n%s Priority:", priority)
	if len(issues) == 0 {
		fmt.Fprintf(b, "\n(No %s priority issues)", strings.ToLower(priority))
		return
	}
	for i, issue := range issues {
		fmt.Fprintf(b, "\n%d. %s (%d queries)", i+1, issue.Label, issue.Count)
	}
}

// formatScore renders floats without trailing zeros: 76.7, 0, 52.2.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rateMark(rate float64) string {
	if rate < 60 {
		return "⚠"
	}
	return "✅"
}

func toneMark(score float64) string {
	if score >= 8 {
		return "✅"
	}
	return "⚠"
}

func severityMark(severity string) string {
	switch severity {
	case models.SeverityCritical:
		return "🔴"
	case models.SeverityWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}
