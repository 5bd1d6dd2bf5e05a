package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dtroode/videoflix-server/internal/model"
)

var _ model.TokenBlacklist = (*Blacklist)(nil)

// Blacklist is a process-local revocation set used when Redis is not configured.
type Blacklist struct {
	c *gocache.Cache
}

func NewBlacklist(cleanupInterval time.Duration) *Blacklist {
	return &Blacklist{c: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (b *Blacklist) Add(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.c.Set(jti, struct{}{}, ttl)
	return nil
}

func (b *Blacklist) Contains(_ context.Context, jti string) (bool, error) {
	_, ok := b.c.Get(jti)
	return ok, nil
}
