package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"supportpulse-be/internal/models"
	"supportpulse-be/internal/utils"

	"github.com/rs/zerolog/log"
)

// Scheduler states
const (
	StateStopped = "STOPPED"
	StateRunning = "RUNNING"
)

// GenerateFunc runs the report pipeline for one date.
type GenerateFunc func(ctx context.Context, date string) (*models.DailyReport, error)

// Scheduler fires the generation pipeline once daily at a fixed IST
// wall-clock time, targeting the previous IST calendar day. It also offers
// a fire-and-forget manual trigger that leaves the periodic schedule
// untouched.
type Scheduler struct {
	mu       sync.Mutex
	state    string
	hour     int
	minute   int
	generate GenerateFunc
	now      func() time.Time
	stopCh   chan struct{}

	lastRunAt     time.Time
	lastRunStatus string
}

// NewScheduler creates a stopped scheduler firing daily at hour:minute IST.
func NewScheduler(generate GenerateFunc, hour, minute int) *Scheduler {
	return &Scheduler{
		state:    StateStopped,
		hour:     hour,
		minute:   minute,
		generate: generate,
		now:      time.Now,
	}
}

// Start launches the periodic job. Starting a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		log.Warn().Msg("scheduler already running")
		return
	}

	s.stopCh = make(chan struct{})
	s.state = StateRunning
	go s.run(s.stopCh)

	log.Info().
		Time("next_execution", s.nextExecution(s.now())).
		Msgf("scheduler started, daily at %02d:%02d IST", s.hour, s.minute)
}

// Stop halts the periodic job. An in-flight run finishes on its own.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		log.Warn().Msg("scheduler not running")
		return
	}

	close(s.stopCh)
	s.state = StateStopped
	log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) run(stopCh chan struct{}) {
	for {
		now := s.now()
		timer := time.NewTimer(s.nextExecution(now).Sub(now))

		select {
		case <-stopCh:
			timer.Stop()
			return
		case <-timer.C:
			s.fire()
		}
	}
}

// fire runs the pipeline for the previous IST day. A failed run is logged
// and not retried; the next execution stays on schedule.
func (s *Scheduler) fire() {
	target := utils.YesterdayIST(s.now())
	log.Info().Str("date", target).Msg("scheduled report generation firing")

	started := s.now()
	_, err := s.generate(context.Background(), target)

	s.mu.Lock()
	s.lastRunAt = started
	if err != nil {
		s.lastRunStatus = "failed"
	} else {
		s.lastRunStatus = "success"
	}
	s.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Str("date", target).Msg("scheduled report generation failed")
		return
	}
	log.Info().Str("date", target).Msg("scheduled report generation completed")
}

// TriggerNow enqueues a generation run for the previous IST day without
// waiting for it and without moving the periodic schedule. It returns the
// target date of the enqueued run.
func (s *Scheduler) TriggerNow() string {
	target := utils.YesterdayIST(s.now())
	log.Info().Str("date", target).Msg("manual report generation triggered")

	go func() {
		if _, err := s.generate(context.Background(), target); err != nil {
			log.Error().Err(err).Str("date", target).Msg("manual report generation failed")
		}
	}()

	return target
}

// Status reports the scheduler snapshot, with the next execution expressed
// both in UTC and IST.
func (s *Scheduler) Status() models.SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := models.SchedulerStatus{
		State:    s.state,
		Timezone: "Asia/Kolkata (IST)",
		Schedule: fmt.Sprintf("Daily at %02d:%02d IST", s.hour, s.minute),
	}
	if s.state == StateRunning {
		next := s.nextExecution(s.now())
		status.NextExecutionUTC = next.UTC().Format(time.RFC3339)
		status.NextExecutionIST = next.In(utils.IST).Format("2006-01-02 15:04:05 MST")
		status.JobCount = 1
	}
	if !s.lastRunAt.IsZero() {
		status.LastRunAt = s.lastRunAt.UTC().Format(time.RFC3339)
		status.LastRunStatus = s.lastRunStatus
	}
	return status
}

// nextExecution is the first hour:minute IST strictly after now.
func (s *Scheduler) nextExecution(now time.Time) time.Time {
	ist := now.In(utils.IST)
	next := time.Date(ist.Year(), ist.Month(), ist.Day(), s.hour, s.minute, 0, 0, utils.IST)
	if !next.After(ist) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
