package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware_UsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/activate/{uid}/{token}/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	for _, path := range []string{"/activate/MQ/abc/", "/activate/Mg/def/"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/activate/{uid}/{token}/", "400"))
	assert.Equal(t, float64(2), got)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.httpInflight))
}

func TestMetrics_Middleware_DefaultStatusAndUnmatched(t *testing.T) {
	m := New()

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/anything", nil))

	got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", unmatchedRoute, "200"))
	assert.Equal(t, float64(1), got)
}

func TestMetrics_Middleware_StatusFromWrappedWriter(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name:    "no write",
			handler: func(http.ResponseWriter, *http.Request) {},
			want:    "200",
		},
		{
			name: "first status wins",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: "201",
		},
		{
			name: "status before body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("missing"))
			},
			want: "404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()

			rec := httptest.NewRecorder()
			m.Middleware(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", unmatchedRoute, tt.want))
			assert.Equal(t, float64(1), got)
		})
	}
}

func TestMetrics_NotificationCounters(t *testing.T) {
	m := New()

	m.NotificationSent("activation")
	m.NotificationSent("activation")
	m.NotificationRetried("password_reset")
	m.NotificationFailed("password_reset")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.notificationsTotal.WithLabelValues("activation", "sent")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.notificationsTotal.WithLabelValues("password_reset", "retried")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.notificationsTotal.WithLabelValues("password_reset", "failed")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.NotificationSent("activation")

	pool, err := pgxpool.New(context.Background(), "postgres://u:p@127.0.0.1:1/db")
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, m.RegisterPool(pool))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `notifications_total{kind="activation",result="sent"} 1`)
	assert.Contains(t, string(body), "pgxpool_total_conns 0")
	assert.Contains(t, string(body), "go_goroutines")
}
