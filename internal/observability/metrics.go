package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	workbooksTotal  *prometheus.CounterVec
	decodeDuration  prometheus.Histogram
	aggregations    *prometheus.CounterVec
}

// NewMetrics initialises the registry and the base metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stocklens_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stocklens_http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	workbooks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stocklens_workbooks_processed_total",
		Help: "Workbook uploads by processing outcome.",
	}, []string{"outcome"})
	decode := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "stocklens_workbook_decode_duration_seconds",
		Help:    "Time spent decoding and indexing uploaded workbooks.",
		Buckets: prometheus.DefBuckets,
	})
	aggregations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stocklens_aggregations_total",
		Help: "Filter-and-aggregate runs by outcome.",
	}, []string{"outcome"})
	registry.MustRegister(requests, duration, workbooks, decode, aggregations)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		workbooksTotal:  workbooks,
		decodeDuration:  decode,
		aggregations:    aggregations,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records request metrics for every HTTP request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveWorkbook records one workbook processing attempt.
func (m *Metrics) ObserveWorkbook(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.workbooksTotal.WithLabelValues(outcome).Inc()
	m.decodeDuration.Observe(elapsed.Seconds())
}

// ObserveAggregation records one aggregation run.
func (m *Metrics) ObserveAggregation(outcome string) {
	if m == nil {
		return
	}
	m.aggregations.WithLabelValues(outcome).Inc()
}

// Registerer exposes the registry for custom metric registration.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
