package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NotificationKind selects the email that is sent.
type NotificationKind string

const (
	NotificationActivation    NotificationKind = "activation"
	NotificationPasswordReset NotificationKind = "password_reset"
)

// Notification is a request to deliver an email to an account.
type Notification struct {
	Kind      NotificationKind  `json:"kind"`
	AccountID int64             `json:"account_id"`
	Email     string            `json:"email"`
	Params    map[string]string `json:"params,omitempty"`
}

// Notifier hands notifications off for asynchronous delivery.
type Notifier interface {
	Enqueue(ctx context.Context, n Notification) error
}

// NotificationJob is a queued delivery attempt. Attempt counts previous failures.
type NotificationJob struct {
	ID           uuid.UUID    `json:"id"`
	Notification Notification `json:"notification"`
	Attempt      int          `json:"attempt"`
	EnqueuedAt   time.Time    `json:"enqueued_at"`
}

// EmailMessage is a rendered plain-text email.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}
