package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/videoflix-server/internal/model"
)

var _ model.TokenBlacklist = (*Blacklist)(nil)

const blacklistPrefix = "blacklist:refresh:"

// Blacklist stores revoked refresh token IDs as keys expiring with the token.
type Blacklist struct {
	client redis.UniversalClient
}

func NewBlacklist(client redis.UniversalClient) *Blacklist {
	return &Blacklist{client: client}
}

func (b *Blacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (b *Blacklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return n > 0, nil
}
