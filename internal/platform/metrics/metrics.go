// Package metrics records per-request Prometheus metrics in a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels requests that did not resolve to a registered route,
// keeping label cardinality bounded regardless of the paths clients send.
const unmatchedRoute = "unmatched"

// Recorder holds the HTTP collectors.
type Recorder struct {
	registry     *prometheus.Registry
	requestsName string
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	inFlight     prometheus.Gauge
}

// New registers the HTTP collectors under namespace in a fresh registry.
func New(namespace string) *Recorder {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	inFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests, duration, inFlight)

	return &Recorder{
		registry:     registry,
		requestsName: prometheus.BuildFQName(namespace, "http", "requests_total"),
		requests:     requests,
		duration:     duration,
		inFlight:     inFlight,
	}
}

// Registry exposes the underlying registry for gathering.
func (m *Recorder) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware observes every request passing through it.
func (m *Recorder) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := routePattern(r)
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
			m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// RequestsServed sums the request counter across all label values.
func (m *Recorder) RequestsServed() (float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != m.requestsName {
			continue
		}
		for _, metric := range mf.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total, nil
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
