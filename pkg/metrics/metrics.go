package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Business metrics
	EnrollmentsCreated  prometheus.Counter
	VideosUploaded      prometheus.Counter
	VideosSubmitted     prometheus.Counter
	EnrollmentsDecided  *prometheus.CounterVec
	AnalyticsQueries    *prometheus.CounterVec
	ConversionPoolBuilds prometheus.Counter

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets, // 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Business metrics
		EnrollmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "enrollments_created_total",
			Help: "Total number of campaign enrollments",
		}),
		VideosUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "videos_uploaded_total",
			Help: "Total number of videos uploaded",
		}),
		VideosSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "videos_submitted_total",
			Help: "Total number of videos submitted for review",
		}),
		EnrollmentsDecided: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrollments_decided_total",
				Help: "Total number of review decisions",
			},
			[]string{"decision"}, // approved, rejected
		),
		AnalyticsQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_queries_total",
				Help: "Total number of analytics report queries",
			},
			[]string{"range"}, // daily, weekly, monthly, yearly
		),
		ConversionPoolBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "conversion_pool_builds_total",
			Help: "Total number of conversion pool rebuilds",
		}),

		// Cache metrics
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"}, // redis, memory
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/enrollments/:id)

			// Measure request size
			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			// Call next handler
			err := next(c)

			// Record metrics
			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordEnrollment increments the enrollments counter
func (m *Metrics) RecordEnrollment() {
	m.EnrollmentsCreated.Inc()
}

// RecordVideoUpload increments the uploads counter
func (m *Metrics) RecordVideoUpload() {
	m.VideosUploaded.Inc()
}

// RecordVideoSubmit increments the submissions counter
func (m *Metrics) RecordVideoSubmit() {
	m.VideosSubmitted.Inc()
}

// RecordDecision increments the review decision counter
func (m *Metrics) RecordDecision(approved bool) {
	decision := "rejected"
	if approved {
		decision = "approved"
	}
	m.EnrollmentsDecided.WithLabelValues(decision).Inc()
}

// RecordAnalyticsQuery increments the analytics queries counter
func (m *Metrics) RecordAnalyticsQuery(timeRange string) {
	m.AnalyticsQueries.WithLabelValues(timeRange).Inc()
}

// RecordPoolBuild increments the conversion pool rebuild counter
func (m *Metrics) RecordPoolBuild() {
	m.ConversionPoolBuilds.Inc()
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
