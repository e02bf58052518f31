package mockstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"supportpulse-be/internal/models"
	"supportpulse-be/internal/repository"
)

// Store is an in-memory ReportStore used by service and handler tests. It
// mirrors the Mongo repository's semantics: one document per date,
// created_at written once, updated_at on every upsert.
type Store struct {
	mu      sync.RWMutex
	reports map[string]*models.DailyReport

	// Now is the injected clock for upsert timestamps.
	Now func() time.Time
	// HealthErr makes Health (and nothing else) fail when set.
	HealthErr error
}

var _ repository.ReportStore = (*Store)(nil)

func New() *Store {
	return &Store{
		reports: map[string]*models.DailyReport{},
		Now:     time.Now,
	}
}

func (s *Store) Upsert(_ context.Context, report *models.DailyReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *report
	now := s.Now().UTC()
	if prev, ok := s.reports[report.ReportDate]; ok {
		stored.CreatedAt = prev.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	s.reports[report.ReportDate] = &stored
	return nil
}

func (s *Store) Get(_ context.Context, date string) (*models.DailyReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[date]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *report
	return &clone, nil
}

func (s *Store) List(_ context.Context, f repository.ListFilter) ([]*models.DailyReport, error) {
	matched := s.matching(f.StartDate, f.EndDate)
	sort.Slice(matched, func(i, j int) bool {
		if f.Ascending {
			return matched[i].ReportDate < matched[j].ReportDate
		}
		return matched[i].ReportDate > matched[j].ReportDate
	})

	if f.Skip > 0 {
		if int(f.Skip) >= len(matched) {
			return []*models.DailyReport{}, nil
		}
		matched = matched[f.Skip:]
	}
	if f.Limit > 0 && int(f.Limit) < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (s *Store) CountRange(_ context.Context, startDate, endDate string) (int64, error) {
	return int64(len(s.matching(startDate, endDate))), nil
}

func (s *Store) Summarize(_ context.Context, startDate, endDate string) (*repository.RangeAggregate, error) {
	matched := s.matching(startDate, endDate)
	if len(matched) == 0 {
		return nil, nil
	}

	agg := &repository.RangeAggregate{
		MinDate: matched[0].ReportDate,
		MaxDate: matched[0].ReportDate,
	}
	var rateSum, toneSum float64
	for _, r := range matched {
		agg.TotalEmails += r.TotalEmails
		agg.QueriesCount += r.QueriesCount
		agg.AlertsCount += r.AlertsCount
		rateSum += r.OverallResponseRate
		toneSum += r.ToneScoreAvg
		if r.ReportDate < agg.MinDate {
			agg.MinDate = r.ReportDate
		}
		if r.ReportDate > agg.MaxDate {
			agg.MaxDate = r.ReportDate
		}
	}
	agg.AvgResponseRate = rateSum / float64(len(matched))
	agg.AvgToneScore = toneSum / float64(len(matched))
	return agg, nil
}

func (s *Store) Latest(ctx context.Context) (*models.DailyReport, error) {
	reports, err := s.List(ctx, repository.ListFilter{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, repository.ErrNotFound
	}
	return reports[0], nil
}

func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.reports)), nil
}

func (s *Store) Health(_ context.Context) error {
	return s.HealthErr
}

func (s *Store) matching(startDate, endDate string) []*models.DailyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.DailyReport
	for date, report := range s.reports {
		if startDate != "" && date < startDate {
			continue
		}
		if endDate != "" && date > endDate {
			continue
		}
		clone := *report
		matched = append(matched, &clone)
	}
	return matched
}
