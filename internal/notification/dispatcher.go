package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
)

var _ model.Notifier = (*Dispatcher)(nil)

// Dispatcher turns notifications into queued jobs. It never waits for delivery.
type Dispatcher struct {
	queue  Queue
	logger *logger.Logger
	now    func() time.Time
}

func NewDispatcher(queue Queue, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{queue: queue, logger: logger, now: time.Now}
}

func (d *Dispatcher) Enqueue(ctx context.Context, n model.Notification) error {
	job := model.NotificationJob{
		ID:           uuid.New(),
		Notification: n,
		EnqueuedAt:   d.now(),
	}

	if err := d.queue.Publish(ctx, job); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	d.logger.Debug("Notification dispatcher: job enqueued",
		"job_id", job.ID.String(),
		"kind", string(n.Kind),
		"account_id", n.AccountID)

	return nil
}
