package model

import "context"

type ContextManager interface {
	SetAccountIDToContext(ctx context.Context, accountID int64) context.Context
	GetAccountIDFromContext(ctx context.Context) (int64, bool)
}
