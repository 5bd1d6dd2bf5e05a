package context

import (
	"context"
)

type accountIDKey struct{}

// Manager stores the authenticated account id in request contexts.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetAccountIDToContext returns a copy of ctx carrying accountID.
func (m *Manager) SetAccountIDToContext(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, accountIDKey{}, accountID)
}

// GetAccountIDFromContext returns the account id set by SetAccountIDToContext.
func (m *Manager) GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(accountIDKey{}).(int64)
	if !ok || accountID <= 0 {
		return 0, false
	}
	return accountID, true
}
