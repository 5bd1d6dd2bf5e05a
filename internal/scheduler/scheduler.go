// Package scheduler runs deferred and periodic background tasks on a
// gocron scheduler.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/dtroode/videoflix-server/internal/logger"
)

// Scheduler wraps gocron with the few job shapes the server needs.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *logger.Logger
	now       func() time.Time
}

func New(logger *logger.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{scheduler: s, logger: logger, now: time.Now}, nil
}

// Start begins running scheduled jobs. It does not block.
func (s *Scheduler) Start() {
	s.scheduler.Start()
}

// Go runs fn once as soon as possible.
func (s *Scheduler) Go(name string, fn func()) error {
	return s.After(0, name, fn)
}

// After runs fn once after delay.
func (s *Scheduler) After(delay time.Duration, name string, fn func()) error {
	start := gocron.OneTimeJobStartImmediately()
	if delay > 0 {
		start = gocron.OneTimeJobStartDateTime(s.now().Add(delay))
	}

	_, err := s.scheduler.NewJob(
		gocron.OneTimeJob(start),
		gocron.NewTask(fn),
		gocron.WithName(name),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	return nil
}

// Every runs fn each interval. A run that is still going when the next one is
// due causes that next run to be skipped.
func (s *Scheduler) Every(interval time.Duration, name string, fn func()) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(fn),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule periodic job %s: %w", name, err)
	}

	return nil
}

// Stop waits for running jobs and discards pending ones.
func (s *Scheduler) Stop() error {
	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}

	s.logger.Info("Scheduler: stopped")
	return nil
}
