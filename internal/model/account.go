package model

import (
	"context"
	"time"
)

// AccountStore defines persistence operations for accounts.
type AccountStore interface {
	// Create stores the account and its activation token atomically. The
	// returned account carries the token.
	Create(ctx context.Context, account Account) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id int64) (Account, error)
	SetActive(ctx context.Context, id int64) error
	SetPassword(ctx context.Context, id int64, passwordHash string) error
}

// Account represents a registered user.
type Account struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// ActivationToken is nil when the account has no outstanding token.
	ActivationToken *ActivationToken
}
