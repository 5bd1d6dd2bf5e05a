package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/videoflix-server/internal/model"
)

var _ model.TokenManager = (*JWT)(nil)

// Claims represents JWT claims with token type. The subject holds the account ID.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWT creates a new JWT token manager.
func NewJWT(secretKey string, accessTTL, refreshTTL time.Duration) *JWT {
	return &JWT{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// GenerateAccessToken creates a short-lived access token.
func (j *JWT) GenerateAccessToken(accountID int64) (model.IssuedToken, error) {
	token, err := j.generate(accountID, typeAccess, j.accessTTL)
	if err != nil {
		return model.IssuedToken{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}

// GenerateRefreshToken creates a long-lived refresh token.
func (j *JWT) GenerateRefreshToken(accountID int64) (model.IssuedToken, error) {
	token, err := j.generate(accountID, typeRefresh, j.refreshTTL)
	if err != nil {
		return model.IssuedToken{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return token, nil
}

// ParseAccessToken validates an access token and returns its account ID.
func (j *JWT) ParseAccessToken(tokenString string) (int64, error) {
	claims, err := j.parse(tokenString, typeAccess)
	if err != nil {
		return 0, fmt.Errorf("failed to parse access token: %w", err)
	}

	accountID, err := subject(claims)
	if err != nil {
		return 0, fmt.Errorf("failed to parse access token: %w", err)
	}
	return accountID, nil
}

// ParseRefreshToken validates a refresh token and returns its claims.
func (j *JWT) ParseRefreshToken(tokenString string) (model.RefreshClaims, error) {
	claims, err := j.parse(tokenString, typeRefresh)
	if err != nil {
		return model.RefreshClaims{}, fmt.Errorf("failed to parse refresh token: %w", err)
	}

	accountID, err := subject(claims)
	if err != nil {
		return model.RefreshClaims{}, fmt.Errorf("failed to parse refresh token: %w", err)
	}
	if claims.ID == "" {
		return model.RefreshClaims{}, fmt.Errorf("failed to parse refresh token: %w: missing jti", model.ErrInvalidToken)
	}

	return model.RefreshClaims{
		AccountID: accountID,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (j *JWT) generate(accountID int64, tokenType string, ttl time.Duration) (model.IssuedToken, error) {
	now := j.now()
	expiresAt := now.Add(ttl)
	jti := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return model.IssuedToken{}, err
	}

	return model.IssuedToken{
		Value:     tokenString,
		ID:        jti,
		ExpiresAt: expiresAt,
	}, nil
}

func (j *JWT) parse(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, model.ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidToken, claims.TokenType)
	}
	return claims, nil
}

func subject(claims *Claims) (int64, error) {
	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", model.ErrInvalidToken, claims.Subject)
	}
	return accountID, nil
}
