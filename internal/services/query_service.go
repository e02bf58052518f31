package services

import (
	"context"
	"fmt"

	"supportpulse-be/internal/models"
	"supportpulse-be/internal/repository"
	"supportpulse-be/internal/utils"
)

// ValidationError marks a request that failed input validation and maps to
// a 400-class response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ListParams are the pagination and filter inputs of the list endpoint.
// Zero values take the documented defaults: page 1, limit 10, order desc.
type ListParams struct {
	Page      int
	Limit     int
	StartDate string
	EndDate   string
	SortOrder string
}

// QueryService is the read path over the report store: pagination with
// cross-page summary statistics, and the latest-plus-trends view.
type QueryService struct {
	store        repository.ReportStore
	maxRangeDays int
}

func NewQueryService(store repository.ReportStore, maxRangeDays int) *QueryService {
	return &QueryService{store: store, maxRangeDays: maxRangeDays}
}

// List returns one page of reports plus pagination metadata and a summary
// computed over the entire filtered range.
func (s *QueryService) List(ctx context.Context, p ListParams) (*models.ReportListResponse, error) {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = 10
	}
	if p.SortOrder == "" {
		p.SortOrder = "desc"
	}

	if p.Page < 1 {
		return nil, newValidationError("page must be >= 1")
	}
	if p.Limit < 1 || p.Limit > 100 {
		return nil, newValidationError("limit must be between 1 and 100")
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		return nil, newValidationError("sort_order must be asc or desc")
	}
	if err := s.validateRange(p.StartDate, p.EndDate); err != nil {
		return nil, err
	}

	total64, err := s.store.CountRange(ctx, p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	total := int(total64)

	reports, err := s.store.List(ctx, repository.ListFilter{
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Ascending: p.SortOrder == "asc",
		Skip:      int64((p.Page - 1) * p.Limit),
		Limit:     int64(p.Limit),
	})
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []*models.DailyReport{}
	}

	summary, err := s.summarize(ctx, p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.ReportListResponse{
		Success:    true,
		Reports:    reports,
		Pagination: paginate(p.Page, p.Limit, total, len(reports)),
		Summary:    *summary,
	}, nil
}

// LatestSummary returns the most recent report's key figures plus the delta
// against the report immediately before it. With an empty store it answers
// has_data=false and a remediation hint instead.
func (s *QueryService) LatestSummary(ctx context.Context) (*models.LatestSummaryResponse, error) {
	reports, err := s.store.List(ctx, repository.ListFilter{Limit: 2})
	if err != nil {
		return nil, err
	}

	if len(reports) == 0 {
		return &models.LatestSummaryResponse{
			Success:    true,
			HasData:    false,
			Suggestion: "No reports generated yet. Use POST /reports/generate/now to create one.",
		}, nil
	}

	latest := reports[0]
	resp := &models.LatestSummaryResponse{
		Success:             true,
		HasData:             true,
		ReportDate:          latest.ReportDate,
		TotalEmails:         latest.TotalEmails,
		QueriesCount:        latest.QueriesCount,
		RespondedCount:      latest.RespondedCount,
		PendingCount:        latest.PendingCount,
		OverallResponseRate: latest.OverallResponseRate,
		ToneScoreAvg:        latest.ToneScoreAvg,
		AlertsCount:         latest.AlertsCount,
	}

	if len(reports) > 1 {
		prev := reports[1]
		resp.ComparisonDate = prev.ReportDate
		resp.Trends = &models.TrendDelta{
			TotalEmails:  latest.TotalEmails - prev.TotalEmails,
			ResponseRate: round1(latest.OverallResponseRate - prev.OverallResponseRate),
			ToneScore:    round1(latest.ToneScoreAvg - prev.ToneScoreAvg),
			AlertsCount:  latest.AlertsCount - prev.AlertsCount,
		}
	}

	return resp, nil
}

func (s *QueryService) validateRange(startDate, endDate string) error {
	var start, end string
	if startDate != "" {
		if _, err := utils.ParseDate(startDate); err != nil {
			return newValidationError("invalid start_date %q, expected YYYY-MM-DD", startDate)
		}
		start = startDate
	}
	if endDate != "" {
		if _, err := utils.ParseDate(endDate); err != nil {
			return newValidationError("invalid end_date %q, expected YYYY-MM-DD", endDate)
		}
		end = endDate
	}
	if start != "" && end != "" {
		if start > end {
			return newValidationError("start_date must not be after end_date")
		}
		if days := utils.DaysBetween(start, end); days > s.maxRangeDays {
			return newValidationError("date range cannot exceed %d days", s.maxRangeDays)
		}
	}
	return nil
}

func (s *QueryService) summarize(ctx context.Context, startDate, endDate string) (*models.RangeSummary, error) {
	agg, err := s.store.Summarize(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if agg == nil {
		return &models.RangeSummary{}, nil
	}

	// Effective range: explicit filter bounds win; otherwise the observed
	// extremes of the matching reports.
	rangeStart := startDate
	if rangeStart == "" {
		rangeStart = agg.MinDate
	}
	rangeEnd := endDate
	if rangeEnd == "" {
		rangeEnd = agg.MaxDate
	}

	return &models.RangeSummary{
		TotalEmails:     agg.TotalEmails,
		QueriesCount:    agg.QueriesCount,
		AvgResponseRate: round1(agg.AvgResponseRate),
		AvgToneScore:    round1(agg.AvgToneScore),
		AlertsCount:     agg.AlertsCount,
		DateRange: models.DateRange{
			Start: rangeStart,
			End:   rangeEnd,
			Days:  utils.DaysBetween(rangeStart, rangeEnd),
		},
	}, nil
}

func paginate(page, limit, total, pageLen int) models.Pagination {
	totalPages := (total + limit - 1) / limit

	p := models.Pagination{
		CurrentPage: page,
		PerPage:     limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}
	if pageLen > 0 {
		p.StartItem = (page-1)*limit + 1
		p.EndItem = (page-1)*limit + pageLen
	}
	return p
}
