package notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/videoflix-server/internal/mocks"
	"github.com/dtroode/videoflix-server/internal/model"
	"github.com/dtroode/videoflix-server/internal/testutil"
)

func TestDispatcher_Enqueue(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	n := model.Notification{Kind: model.NotificationActivation, AccountID: 1, Email: "a@x.com"}

	queue := mocks.NewQueue(t)
	queue.On("Publish", ctx, mock.MatchedBy(func(job model.NotificationJob) bool {
		return job.ID != uuid.Nil && job.Attempt == 0 && job.EnqueuedAt.Equal(now) && job.Notification.Email == "a@x.com"
	})).Return(nil).Once()

	d := NewDispatcher(queue, testutil.MakeNoopLogger())
	d.now = func() time.Time { return now }

	require.NoError(t, d.Enqueue(ctx, n))
}

func TestDispatcher_Enqueue_QueueError(t *testing.T) {
	ctx := context.Background()

	queue := mocks.NewQueue(t)
	queue.On("Publish", ctx, mock.Anything).Return(assert.AnError).Once()

	d := NewDispatcher(queue, testutil.MakeNoopLogger())

	err := d.Enqueue(ctx, model.Notification{Kind: model.NotificationActivation})
	assert.ErrorIs(t, err, assert.AnError)
}
