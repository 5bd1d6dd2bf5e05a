package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
)

const consumerTag = "notification-worker"

// OpenConnection opens an rmq connection over an existing redis client.
// Background errors reported by rmq are logged until ctx is done.
func OpenConnection(ctx context.Context, client redis.Cmdable, tag string, logger *logger.Logger) (rmq.Connection, error) {
	errCh := make(chan error, 16)

	conn, err := rmq.OpenConnectionWithRedisClient(tag, client, errCh)
	if err != nil {
		return nil, fmt.Errorf("failed to open rmq connection: %w", err)
	}

	go logErrors(ctx, errCh, logger)

	return conn, nil
}

func logErrors(ctx context.Context, errCh <-chan error, logger *logger.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errCh:
			var heartbeatErr *rmq.HeartbeatError
			if errors.As(err, &heartbeatErr) && heartbeatErr.Count == rmq.HeartbeatErrorLimit {
				logger.Error("Queue: heartbeat lost, consumers stopped", "error", err.Error())
				continue
			}
			logger.Warn("Queue: background error", "error", err.Error())
		}
	}
}

// RMQ is a redis-backed job queue. Jobs survive restarts and unacked jobs
// can be returned to the queue by Clean.
type RMQ struct {
	conn     rmq.Connection
	queue    rmq.Queue
	prefetch int64
	poll     time.Duration
	logger   *logger.Logger
}

func NewRMQ(conn rmq.Connection, name string, prefetch int64, poll time.Duration, logger *logger.Logger) (*RMQ, error) {
	q, err := conn.OpenQueue(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open queue %s: %w", name, err)
	}

	return &RMQ{
		conn:     conn,
		queue:    q,
		prefetch: prefetch,
		poll:     poll,
		logger:   logger,
	}, nil
}

func (r *RMQ) Publish(_ context.Context, job model.NotificationJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := r.queue.PublishBytes(payload); err != nil {
		return fmt.Errorf("failed to publish job: %w", err)
	}

	return nil
}

// Consume starts delivering jobs to handler in the background.
func (r *RMQ) Consume(handler Handler) error {
	if err := r.queue.StartConsuming(r.prefetch, r.poll); err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	if _, err := r.queue.AddConsumerFunc(consumerTag, r.consumeFunc(handler)); err != nil {
		return fmt.Errorf("failed to add consumer: %w", err)
	}

	r.logger.Info("Queue: consuming started",
		"prefetch", r.prefetch,
		"poll", r.poll.String())

	return nil
}

func (r *RMQ) consumeFunc(handler Handler) rmq.ConsumerFunc {
	return func(delivery rmq.Delivery) {
		var job model.NotificationJob
		if err := json.Unmarshal([]byte(delivery.Payload()), &job); err != nil {
			r.logger.Error("Queue: rejecting malformed job",
				"error", err.Error())
			if err := delivery.Reject(); err != nil {
				r.logger.Error("Queue: failed to reject job", "error", err.Error())
			}
			return
		}

		handler(context.Background(), job)

		if err := delivery.Ack(); err != nil {
			r.logger.Error("Queue: failed to ack job",
				"job_id", job.ID.String(),
				"error", err.Error())
		}
	}
}

// Clean returns jobs held by dead consumers to their queues.
func (r *RMQ) Clean() {
	returned, err := rmq.NewCleaner(r.conn).Clean()
	if err != nil {
		r.logger.Error("Queue: cleaner failed", "error", err.Error())
		return
	}
	if returned > 0 {
		r.logger.Info("Queue: returned unacked jobs", "count", returned)
	}
}

// Stop stops all consumers and waits for in-flight jobs.
func (r *RMQ) Stop() {
	<-r.conn.StopAllConsuming()
	r.logger.Info("Queue: consuming stopped")
}
