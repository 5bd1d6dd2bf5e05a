// Package notification delivers account emails asynchronously. Requests are
// published to a queue, consumed by a Worker and retried with backoff.
package notification

import (
	"context"
	"time"

	"github.com/dtroode/videoflix-server/internal/model"
)

// Queue accepts jobs for asynchronous processing.
type Queue interface {
	Publish(ctx context.Context, job model.NotificationJob) error
}

// Sender delivers a rendered email.
type Sender interface {
	Send(ctx context.Context, msg model.EmailMessage) error
}

// Scheduler runs fn once after delay.
type Scheduler interface {
	After(delay time.Duration, name string, fn func()) error
}

// Recorder observes delivery outcomes.
type Recorder interface {
	NotificationSent(kind string)
	NotificationRetried(kind string)
	NotificationFailed(kind string)
}
