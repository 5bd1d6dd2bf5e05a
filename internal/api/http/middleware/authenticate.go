package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/videoflix-server/internal/api/http/response"
	"github.com/dtroode/videoflix-server/internal/apierrors"
	"github.com/dtroode/videoflix-server/internal/logger"
	"github.com/dtroode/videoflix-server/internal/model"
)

// AccountResolver resolves account ID from access tokens.
type AccountResolver interface {
	GetAccountID(ctx context.Context, token string) (int64, error)
}

// Authenticate validates access tokens and injects account ID into context.
type Authenticate struct {
	resolver       AccountResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver AccountResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid access token with 401. The token
// is taken from the Authorization header first, then from the access cookie.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := m.authenticateAccount(r.Context(), tokenFromRequest(r))
		if err != nil {
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			response.WriteError(w, err)
			return
		}

		ctx := m.contextManager.SetAccountIDToContext(r.Context(), accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticateAccount(ctx context.Context, tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, apierrors.NewErrMissingAuthorizationToken()
	}

	accountID, err := m.resolver.GetAccountID(ctx, tokenString)
	if err != nil || accountID <= 0 {
		return 0, apierrors.NewErrInvalidAuthorizationToken()
	}

	return accountID, nil
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := r.Cookie(model.AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}
