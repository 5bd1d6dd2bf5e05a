package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_SetAndGet(t *testing.T) {
	m := NewManager()

	ctx := m.SetAccountIDToContext(context.Background(), 42)

	got, ok := m.GetAccountIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), got)
}

type foreignKey string

func TestManager_Get_Missing(t *testing.T) {
	m := NewManager()

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{name: "empty context", ctx: context.Background()},
		{name: "non positive id", ctx: m.SetAccountIDToContext(context.Background(), 0)},
		{name: "foreign key type", ctx: context.WithValue(context.Background(), foreignKey("account_id"), int64(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := m.GetAccountIDFromContext(tt.ctx)
			assert.False(t, ok)
		})
	}
}
