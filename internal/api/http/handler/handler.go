// Package handler implements the JSON endpoints of the HTTP API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/videoflix-server/internal/api/http/response"
	"github.com/dtroode/videoflix-server/internal/apierrors"
	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
)

// AuthService defines account lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.RegisterResult, error)
	Activate(ctx context.Context, uid, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, params model.ResetParams) error
	Login(ctx context.Context, email, password string) (model.LoginResult, error)
}

// TokenService defines refresh token operations.
type TokenService interface {
	Refresh(ctx context.Context, refreshToken string) (model.IssuedToken, error)
	Revoke(ctx context.Context, refreshToken string) error
}

// VideoService lists the video catalogue.
type VideoService interface {
	List(ctx context.Context) ([]model.Video, error)
}

// CookieConfig controls attributes of the token cookies.
type CookieConfig struct {
	Domain   string
	SameSite string
	Secure   bool
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// handleError logs errors that are not client errors and writes the response.
func handleError(w http.ResponseWriter, lg *logger.Logger, op string, err error) {
	if _, ok := apierrors.As(err); !ok {
		lg.Error("HTTP handler: "+op+" failed",
			"error", err.Error())
	}
	response.WriteError(w, err)
}

func ttlUntil(expiresAt, now time.Time) time.Duration {
	if ttl := expiresAt.Sub(now); ttl > 0 {
		return ttl
	}
	return 0
}
