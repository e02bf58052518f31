package services

import (
	"context"
	"testing"
	"time"

	"supportpulse-be/internal/models"
	"supportpulse-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopGenerate(_ context.Context, date string) (*models.DailyReport, error) {
	return ZeroReport(date), nil
}

func TestSchedulerNextExecutionBeforeFireTime(t *testing.T) {
	s := NewScheduler(noopGenerate, 20, 0)
	// 10:00 IST on 2025-08-21
	s.now = func() time.Time {
		return time.Date(2025, 8, 21, 10, 0, 0, 0, utils.IST)
	}

	next := s.nextExecution(s.now())
	assert.Equal(t, time.Date(2025, 8, 21, 20, 0, 0, 0, utils.IST).Unix(), next.Unix())
}

func TestSchedulerNextExecutionAfterFireTime(t *testing.T) {
	s := NewScheduler(noopGenerate, 20, 0)
	// 21:30 IST rolls over to tomorrow
	s.now = func() time.Time {
		return time.Date(2025, 8, 21, 21, 30, 0, 0, utils.IST)
	}

	next := s.nextExecution(s.now())
	assert.Equal(t, time.Date(2025, 8, 22, 20, 0, 0, 0, utils.IST).Unix(), next.Unix())
}

func TestSchedulerNextExecutionAtExactFireTime(t *testing.T) {
	s := NewScheduler(noopGenerate, 20, 0)
	s.now = func() time.Time {
		return time.Date(2025, 8, 21, 20, 0, 0, 0, utils.IST)
	}

	// Exactly 20:00 schedules tomorrow, never a zero-delay fire.
	next := s.nextExecution(s.now())
	assert.Equal(t, time.Date(2025, 8, 22, 20, 0, 0, 0, utils.IST).Unix(), next.Unix())
}

func TestSchedulerStateTransitions(t *testing.T) {
	s := NewScheduler(noopGenerate, 20, 0)

	assert.Equal(t, StateStopped, s.Status().State)
	assert.Zero(t, s.Status().JobCount)

	s.Start()
	status := s.Status()
	assert.Equal(t, StateRunning, status.State)
	assert.Equal(t, 1, status.JobCount)
	assert.NotEmpty(t, status.NextExecutionUTC)
	assert.NotEmpty(t, status.NextExecutionIST)

	// Starting again is a no-op, not a second job.
	s.Start()
	assert.Equal(t, 1, s.Status().JobCount)

	s.Stop()
	status = s.Status()
	assert.Equal(t, StateStopped, status.State)
	assert.Zero(t, status.JobCount)
	assert.Empty(t, status.NextExecutionUTC)

	// Stopping a stopped scheduler is harmless.
	s.Stop()
	assert.Equal(t, StateStopped, s.Status().State)
}

func TestSchedulerStatusFields(t *testing.T) {
	s := NewScheduler(noopGenerate, 20, 0)
	s.now = func() time.Time {
		return time.Date(2025, 8, 21, 10, 0, 0, 0, utils.IST)
	}
	s.Start()
	defer s.Stop()

	status := s.Status()
	assert.Equal(t, "Asia/Kolkata (IST)", status.Timezone)
	assert.Equal(t, "Daily at 20:00 IST", status.Schedule)

	// 20:00 IST == 14:30 UTC.
	assert.Equal(t, "2025-08-21T14:30:00Z", status.NextExecutionUTC)
	assert.Contains(t, status.NextExecutionIST, "2025-08-21 20:00:00")
}

func TestSchedulerTriggerNow(t *testing.T) {
	generated := make(chan string, 1)
	s := NewScheduler(func(_ context.Context, date string) (*models.DailyReport, error) {
		generated <- date
		return ZeroReport(date), nil
	}, 20, 0)
	s.now = func() time.Time {
		return time.Date(2025, 8, 22, 10, 0, 0, 0, utils.IST)
	}
	s.Start()
	defer s.Stop()

	before := s.Status().NextExecutionUTC

	target := s.TriggerNow()
	assert.Equal(t, "2025-08-21", target)

	select {
	case date := <-generated:
		assert.Equal(t, "2025-08-21", date)
	case <-time.After(2 * time.Second):
		t.Fatal("manual trigger never ran the pipeline")
	}

	// A manual trigger must not move the periodic schedule.
	assert.Equal(t, before, s.Status().NextExecutionUTC)
}

func TestSchedulerTargetsPreviousISTDay(t *testing.T) {
	// 01:00 UTC on Aug 22 is 06:30 IST Aug 22; yesterday is Aug 21.
	now := time.Date(2025, 8, 22, 1, 0, 0, 0, time.UTC)
	require.Equal(t, "2025-08-21", utils.YesterdayIST(now))

	// 20:30 UTC on Aug 21 is 02:00 IST Aug 22; yesterday is still Aug 21.
	now = time.Date(2025, 8, 21, 20, 30, 0, 0, time.UTC)
	require.Equal(t, "2025-08-21", utils.YesterdayIST(now))
}
