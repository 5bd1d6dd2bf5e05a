package model

import (
	"context"
	"time"
)

// TokenManager generates and validates access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(accountID int64) (IssuedToken, error)
	GenerateRefreshToken(accountID int64) (IssuedToken, error)
	ParseAccessToken(token string) (int64, error)
	ParseRefreshToken(token string) (RefreshClaims, error)
}

// TokenBlacklist is a revocation set of refresh token identifiers.
type TokenBlacklist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) (bool, error)
}

// IssuedToken is a signed token together with its identifier and expiry.
type IssuedToken struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// RefreshClaims are the verified claims of a refresh token.
type RefreshClaims struct {
	AccountID int64
	JTI       string
	ExpiresAt time.Time
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	Access  IssuedToken
	Refresh IssuedToken
}

// Cookie names carrying the token pair.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)
