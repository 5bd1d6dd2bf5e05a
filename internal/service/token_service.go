package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
)

// TokenService provides high-level operations for issuing, refreshing,
// and revoking tokens. It composes the TokenManager and TokenBlacklist.
type TokenService struct {
	manager   model.TokenManager
	blacklist model.TokenBlacklist
	logger    *logger.Logger
	now       func() time.Time
}

func NewTokenService(manager model.TokenManager, blacklist model.TokenBlacklist, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, blacklist: blacklist, logger: logger, now: time.Now}
}

// Issue creates an access/refresh pair for the account.
func (s *TokenService) Issue(ctx context.Context, accountID int64) (model.TokenPair, error) {
	access, err := s.manager.GenerateAccessToken(accountID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(accountID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	return model.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh mints a new access token from a valid, non-revoked refresh token.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (model.IssuedToken, error) {
	claims, err := s.verifyRefresh(ctx, presentedRefresh)
	if err != nil {
		return model.IssuedToken{}, err
	}

	access, err := s.manager.GenerateAccessToken(claims.AccountID)
	if err != nil {
		return model.IssuedToken{}, fmt.Errorf("issue new access: %w", err)
	}

	s.logger.Debug("Token service: access token refreshed",
		"account_id", claims.AccountID,
		"refresh_jti", claims.JTI)

	return access, nil
}

// Revoke blacklists a refresh token for the rest of its lifetime.
// Revoking an already revoked token fails with model.ErrInvalidToken.
func (s *TokenService) Revoke(ctx context.Context, presentedRefresh string) error {
	claims, err := s.verifyRefresh(ctx, presentedRefresh)
	if err != nil {
		return err
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if err := s.blacklist.Add(ctx, claims.JTI, ttl); err != nil {
		return fmt.Errorf("revoke refresh: %w", err)
	}

	s.logger.Info("Token service: refresh token revoked",
		"account_id", claims.AccountID,
		"refresh_jti", claims.JTI)

	return nil
}

// GetAccountID resolves the account of an access token.
func (s *TokenService) GetAccountID(ctx context.Context, token string) (int64, error) {
	return s.manager.ParseAccessToken(token)
}

func (s *TokenService) verifyRefresh(ctx context.Context, presentedRefresh string) (model.RefreshClaims, error) {
	claims, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return model.RefreshClaims{}, err
	}

	revoked, err := s.blacklist.Contains(ctx, claims.JTI)
	if err != nil {
		return model.RefreshClaims{}, fmt.Errorf("check blacklist: %w", err)
	}
	if revoked {
		return model.RefreshClaims{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, model.ErrTokenRevoked)
	}

	return claims, nil
}
