// Package metrics exposes Prometheus collectors for the HTTP surface and
// the generation pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	generations        *prometheus.CounterVec
	generationDuration prometheus.Histogram
	exports            *prometheus.CounterVec
}

// New registers all collectors on a private registry so tests can build as
// many instances as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "palette",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "palette",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "palette",
			Name:      "generations_total",
			Help:      "Generate calls by budget tier and outcome.",
		}, []string{"budget_tier", "outcome"}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "palette",
			Name:      "generation_duration_seconds",
			Help:      "Time spent producing a design plan.",
			Buckets:   []float64{0.1, 0.5, 1, 1.5, 2, 5},
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "palette",
			Name:      "pdf_exports_total",
			Help:      "PDF exports by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.generations,
		m.generationDuration,
		m.exports,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request counts and latency keyed by the matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveGeneration(tier, outcome string, d time.Duration) {
	m.generations.WithLabelValues(tier, outcome).Inc()
	m.generationDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveExport(outcome string) {
	m.exports.WithLabelValues(outcome).Inc()
}
