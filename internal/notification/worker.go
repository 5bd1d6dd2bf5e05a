package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
)

// Worker sends queued notifications. A failed send is re-published after the
// backoff interval for its attempt until maxRetries is exhausted; after that
// the failure is logged and dropped.
type Worker struct {
	composer   *Composer
	sender     Sender
	queue      Queue
	scheduler  Scheduler
	recorder   Recorder
	maxRetries int
	intervals  []time.Duration
	logger     *logger.Logger
}

func NewWorker(
	composer *Composer,
	sender Sender,
	queue Queue,
	scheduler Scheduler,
	recorder Recorder,
	maxRetries int,
	intervals []time.Duration,
	logger *logger.Logger,
) *Worker {
	return &Worker{
		composer:   composer,
		sender:     sender,
		queue:      queue,
		scheduler:  scheduler,
		recorder:   recorder,
		maxRetries: maxRetries,
		intervals:  intervals,
		logger:     logger,
	}
}

// Handle processes one job. Errors are handled here and never returned.
func (w *Worker) Handle(ctx context.Context, job model.NotificationJob) {
	kind := string(job.Notification.Kind)

	msg, err := w.composer.Compose(job.Notification)
	if err != nil {
		w.logger.Error("Notification worker: failed to compose email",
			"job_id", job.ID.String(),
			"kind", kind,
			"error", err.Error())
		w.recorder.NotificationFailed(kind)
		return
	}

	err = w.sender.Send(ctx, msg)
	if err == nil {
		w.logger.Info("Notification worker: email sent",
			"job_id", job.ID.String(),
			"kind", kind,
			"account_id", job.Notification.AccountID,
			"attempt", job.Attempt+1)
		w.recorder.NotificationSent(kind)
		return
	}

	if job.Attempt >= w.maxRetries {
		w.logger.Error("Notification worker: giving up on email",
			"job_id", job.ID.String(),
			"kind", kind,
			"account_id", job.Notification.AccountID,
			"attempts", job.Attempt+1,
			"error", err.Error())
		w.recorder.NotificationFailed(kind)
		return
	}

	if schedErr := w.retry(job); schedErr != nil {
		w.logger.Error("Notification worker: failed to schedule retry",
			"job_id", job.ID.String(),
			"kind", kind,
			"error", schedErr.Error())
		w.recorder.NotificationFailed(kind)
		return
	}

	w.logger.Warn("Notification worker: send failed, retry scheduled",
		"job_id", job.ID.String(),
		"kind", kind,
		"attempt", job.Attempt+1,
		"delay", w.backoff(job.Attempt).String(),
		"error", err.Error())
	w.recorder.NotificationRetried(kind)
}

func (w *Worker) retry(job model.NotificationJob) error {
	next := job
	next.Attempt++
	kind := string(job.Notification.Kind)
	name := fmt.Sprintf("notification-retry-%s-%d", job.ID, next.Attempt)

	return w.scheduler.After(w.backoff(job.Attempt), name, func() {
		if err := w.queue.Publish(context.Background(), next); err != nil {
			w.logger.Error("Notification worker: failed to re-publish job",
				"job_id", next.ID.String(),
				"kind", kind,
				"error", err.Error())
			w.recorder.NotificationFailed(kind)
		}
	})
}

// backoff returns the delay before retry number attempt+1. Attempts beyond
// the configured intervals reuse the last one.
func (w *Worker) backoff(attempt int) time.Duration {
	if len(w.intervals) == 0 {
		return 0
	}
	if attempt < len(w.intervals) {
		return w.intervals[attempt]
	}
	return w.intervals[len(w.intervals)-1]
}
