package model

import (
	"context"
	"time"
)

// Storage gives access to stored media objects.
type Storage interface {
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
