package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"supportpulse-be/internal/models"
	"supportpulse-be/internal/repository"

	"github.com/rs/zerolog/log"
)

// ReportService runs the generation pipeline for one date: load the day's
// classified records, aggregate, detect alerts, and commit the report in a
// single upsert. Both scheduler-driven and request-driven entry points go
// through Generate.
type ReportService struct {
	store      repository.ReportStore
	records    repository.RecordSource
	aggregator *MetricsAggregator
	detector   *AlertDetector

	mu       sync.Mutex
	inFlight map[string]*sync.Mutex
}

func NewReportService(store repository.ReportStore, records repository.RecordSource, aggregator *MetricsAggregator, detector *AlertDetector) *ReportService {
	return &ReportService{
		store:      store,
		records:    records,
		aggregator: aggregator,
		detector:   detector,
		inFlight:   map[string]*sync.Mutex{},
	}
}

// Generate runs the full pipeline for date (YYYY-MM-DD) and returns the
// stored report. A day without records commits a zeroed report so the date
// stays queryable. Runs for the same date are mutually exclusive; runs for
// different dates proceed in parallel.
func (s *ReportService) Generate(ctx context.Context, date string) (*models.DailyReport, error) {
	lock := s.dateLock(date)
	lock.Lock()
	defer lock.Unlock()

	log.Info().Str("date", date).Msg("generating daily report")

	records, err := s.records.ListForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading records for %s: %w", date, err)
	}

	report, err := s.aggregator.Aggregate(date, records)
	if errors.Is(err, ErrNoData) {
		log.Warn().Str("date", date).Msg("no records for date, storing zeroed report")
		report = ZeroReport(date)
	} else if err != nil {
		return nil, fmt.Errorf("aggregating %s: %w", date, err)
	}

	s.detector.Detect(report, records)

	if err := s.store.Upsert(ctx, report); err != nil {
		return nil, fmt.Errorf("storing report for %s: %w", date, err)
	}

	stored, err := s.store.Get(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("reading back report for %s: %w", date, err)
	}

	log.Info().
		Str("date", date).
		Int("total_emails", stored.TotalEmails).
		Int("alerts", stored.AlertsCount).
		Msg("daily report stored")

	return stored, nil
}

// dateLock returns the mutex serializing generation for one date. Entries
// are kept for the process lifetime; the map grows by one small entry per
// distinct generated date.
func (s *ReportService) dateLock(date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.inFlight[date]
	if !ok {
		lock = &sync.Mutex{}
		s.inFlight[date] = lock
	}
	return lock
}
