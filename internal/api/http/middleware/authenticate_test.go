package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/videoflix-server/internal/apierrors"
	"github.com/dtroode/videoflix-server/internal/mocks"
	"github.com/dtroode/videoflix-server/internal/model"
	"github.com/dtroode/videoflix-server/internal/testutil"
)

type ctxKey struct{}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		authHeader   string
		cookie       string
		wantToken    string
		resolverID   int64
		resolverErr  error
		wantStatus   int
		wantCode     string
		expectSetCtx bool
	}{
		{
			name:       "missing credentials",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apierrors.CodeMissingAuthorizationToken,
		},
		{
			name:        "invalid bearer token",
			authHeader:  "Bearer invalid",
			wantToken:   "invalid",
			resolverErr: model.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    apierrors.CodeInvalidAuthorizationToken,
		},
		{
			name:       "non positive account id",
			authHeader: "Bearer token",
			wantToken:  "token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apierrors.CodeInvalidAuthorizationToken,
		},
		{
			name:         "valid bearer token",
			authHeader:   "Bearer token",
			wantToken:    "token",
			resolverID:   7,
			wantStatus:   http.StatusOK,
			expectSetCtx: true,
		},
		{
			name:         "valid cookie",
			cookie:       "cookie-token",
			wantToken:    "cookie-token",
			resolverID:   7,
			wantStatus:   http.StatusOK,
			expectSetCtx: true,
		},
		{
			name:         "header wins over cookie",
			authHeader:   "bearer header-token",
			cookie:       "cookie-token",
			wantToken:    "header-token",
			resolverID:   7,
			wantStatus:   http.StatusOK,
			expectSetCtx: true,
		},
		{
			name:         "non bearer header falls back to cookie",
			authHeader:   "Basic dXNlcjpwdw==",
			cookie:       "cookie-token",
			wantToken:    "cookie-token",
			resolverID:   7,
			wantStatus:   http.StatusOK,
			expectSetCtx: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver := mocks.NewAccountResolver(t)
			if tt.wantToken != "" {
				resolver.On("GetAccountID", mock.Anything, tt.wantToken).Return(tt.resolverID, tt.resolverErr).Once()
			}

			cm := mocks.NewContextManager(t)
			if tt.expectSetCtx {
				cm.On("SetAccountIDToContext", mock.Anything, tt.resolverID).
					Return(context.WithValue(context.Background(), ctxKey{}, tt.resolverID)).Once()
			}

			var reached bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				assert.Equal(t, tt.resolverID, r.Context().Value(ctxKey{}))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/video/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: model.AccessTokenCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			NewAuthenticate(resolver, cm, testutil.MakeNoopLogger()).Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.expectSetCtx, reached)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}
