package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/videoflix-server/internal/model"
	"github.com/dtroode/videoflix-server/internal/testutil"
)

func testJob() model.NotificationJob {
	return model.NotificationJob{
		ID:      uuid.New(),
		Attempt: 1,
		Notification: model.Notification{
			Kind:      model.NotificationPasswordReset,
			AccountID: 3,
			Email:     "a@x.com",
			Params:    map[string]string{"uid": "Mw", "token": "t"},
		},
		EnqueuedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRMQ_Publish(t *testing.T) {
	conn := rmq.NewTestConnection()
	q, err := NewRMQ(conn, "notifications", 10, time.Second, testutil.MakeNoopLogger())
	require.NoError(t, err)

	job := testJob()
	require.NoError(t, q.Publish(context.Background(), job))

	deliveries := conn.GetDeliveries("notifications")
	require.Len(t, deliveries, 1)

	var got model.NotificationJob
	require.NoError(t, json.Unmarshal([]byte(deliveries[0]), &got))
	assert.Equal(t, job, got)
}

func TestRMQ_ConsumeFunc_AcksHandledJob(t *testing.T) {
	conn := rmq.NewTestConnection()
	q, err := NewRMQ(conn, "notifications", 10, time.Second, testutil.MakeNoopLogger())
	require.NoError(t, err)

	job := testJob()
	payload, err := json.Marshal(job)
	require.NoError(t, err)

	var handled model.NotificationJob
	consume := q.consumeFunc(func(_ context.Context, j model.NotificationJob) { handled = j })

	delivery := rmq.NewTestDeliveryString(string(payload))
	consume(delivery)

	assert.Equal(t, job, handled)
	assert.Equal(t, rmq.Acked, delivery.State)
}

func TestRMQ_ConsumeFunc_RejectsMalformedJob(t *testing.T) {
	conn := rmq.NewTestConnection()
	q, err := NewRMQ(conn, "notifications", 10, time.Second, testutil.MakeNoopLogger())
	require.NoError(t, err)

	called := false
	consume := q.consumeFunc(func(context.Context, model.NotificationJob) { called = true })

	delivery := rmq.NewTestDeliveryString("{not json")
	consume(delivery)

	assert.False(t, called)
	assert.Equal(t, rmq.Rejected, delivery.State)
}
