// Package metrics exposes Prometheus instrumentation for the HTTP API and
// the notification worker.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

// Metrics owns a registry and the collectors registered in it.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInflight        prometheus.Gauge

	notificationsTotal *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of processed HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInflight: f.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "HTTP requests currently being served.",
		}),
		notificationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notification delivery outcomes by kind.",
		}, []string{"kind", "result"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterPool adds connection pool gauges for pool.
func (m *Metrics) RegisterPool(pool *pgxpool.Pool) error {
	return m.registry.Register(newPoolCollector(pool))
}

// Middleware records request count, latency and inflight requests. Routes are
// labelled by their chi pattern so path parameters do not create new series.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.httpInflight.Inc()
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			m.httpInflight.Dec()
			method := strings.ToUpper(r.Method)
			route := routePattern(r)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		}()

		next.ServeHTTP(ww, r)
	})
}

func (m *Metrics) NotificationSent(kind string) {
	m.notificationsTotal.WithLabelValues(kind, "sent").Inc()
}

func (m *Metrics) NotificationRetried(kind string) {
	m.notificationsTotal.WithLabelValues(kind, "retried").Inc()
}

func (m *Metrics) NotificationFailed(kind string) {
	m.notificationsTotal.WithLabelValues(kind, "failed").Inc()
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}
