package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
)

// Runner starts fn in the background.
type Runner interface {
	Go(name string, fn func()) error
}

// Local is an in-process queue for single-instance deployments. Jobs
// published before Consume are held and delivered once a handler is set.
// Pending jobs are lost on restart.
type Local struct {
	runner  Runner
	logger  *logger.Logger
	mu      sync.Mutex
	handler Handler
	pending []model.NotificationJob
}

func NewLocal(runner Runner, logger *logger.Logger) *Local {
	return &Local{runner: runner, logger: logger}
}

func (l *Local) Publish(_ context.Context, job model.NotificationJob) error {
	l.mu.Lock()
	handler := l.handler
	if handler == nil {
		l.pending = append(l.pending, job)
		l.mu.Unlock()
		return nil
	}
	l.mu.Unlock()

	return l.run(handler, job)
}

func (l *Local) Consume(handler Handler) error {
	l.mu.Lock()
	l.handler = handler
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, job := range pending {
		if err := l.run(handler, job); err != nil {
			return err
		}
	}

	l.logger.Info("Queue: local consuming started",
		"pending", len(pending))

	return nil
}

func (l *Local) run(handler Handler, job model.NotificationJob) error {
	err := l.runner.Go("notification-"+job.ID.String(), func() {
		handler(context.Background(), job)
	})
	if err != nil {
		return fmt.Errorf("failed to run job: %w", err)
	}

	return nil
}
