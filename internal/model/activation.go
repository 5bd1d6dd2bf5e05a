package model

import (
	"context"
	"time"
)

// ActivationTokenStore persists the single outstanding activation token of an account.
type ActivationTokenStore interface {
	GetOrCreate(ctx context.Context, accountID int64) (ActivationToken, error)
	// Delete removes the token and reports whether one existed.
	Delete(ctx context.Context, accountID int64) (bool, error)
}

// ActivationToken marks that an account may consume an activation or reset link.
type ActivationToken struct {
	AccountID int64
	CreatedAt time.Time
}

// Expired reports whether the token is older than window at now.
func (t ActivationToken) Expired(now time.Time, window time.Duration) bool {
	return now.Sub(t.CreatedAt) > window
}

// ActivationCodec derives and checks link tokens bound to account state.
type ActivationCodec interface {
	MakeToken(account Account) string
	CheckToken(account Account, token string) bool
}
