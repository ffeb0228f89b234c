package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	rebuildDuration prometheus.Histogram
	rebuildTotal    prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	rebuildDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "overview_rebuild_duration_seconds",
		Help:    "Duration of full week-overview rebuilds",
		Buckets: prometheus.DefBuckets,
	})

	rebuildTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "overview_rebuild_total",
		Help: "Total number of week-overview rebuilds",
	})

	registry.MustRegister(requestDuration, requestTotal, rebuildDuration, rebuildTotal)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		rebuildDuration: rebuildDuration,
		rebuildTotal:    rebuildTotal,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one served request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveRebuild records one full overview rebuild.
func (s *MetricsService) ObserveRebuild(duration time.Duration) {
	s.rebuildDuration.Observe(duration.Seconds())
	s.rebuildTotal.Inc()
}
