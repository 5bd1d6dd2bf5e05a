// Package queue carries notification jobs from the request path to the
// delivery worker.
package queue

import (
	"context"

	"github.com/dtroode/videoflix-server/internal/model"
)

// Handler processes one job. It owns error handling for the job.
type Handler func(ctx context.Context, job model.NotificationJob)
