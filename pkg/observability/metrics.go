// Package observability provides Prometheus metrics and OpenTelemetry
// tracing for the Entrez SDK.
package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsConfig configures the metrics provider.
type MetricsConfig struct {
	// Service identification
	ServiceName    string
	ServiceVersion string
	Environment    string

	// MetricsPath is the HTTP path of the metrics endpoint (default: /metrics).
	MetricsPath string
	// MetricsPort is the port of the metrics server (default: 9090).
	MetricsPort int

	// Namespace is the Prometheus namespace (default: entrez).
	Namespace string
	// HistogramBuckets overrides the latency buckets (milliseconds).
	HistogramBuckets []float64

	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels
}

// MetricsProvider records SDK operations.
type MetricsProvider interface {
	// RecordQuery records one tool round trip.
	RecordQuery(ctx context.Context, tool, status string, duration time.Duration)
	// RecordSelect records one history selection.
	RecordSelect(ctx context.Context, database, status string, duration time.Duration)
	// RecordPage records one fetched pagination window.
	RecordPage(ctx context.Context, tool string)
	// RecordError records an error by category.
	RecordError(ctx context.Context, category string)
	// RecordInFlight tracks outstanding round trips.
	RecordInFlight(ctx context.Context, delta int)

	// Start serves the metrics endpoint; Shutdown stops it.
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// PrometheusMetricsProvider implements MetricsProvider using Prometheus.
type PrometheusMetricsProvider struct {
	config MetricsConfig
	server *http.Server

	queryDuration  *prometheus.HistogramVec
	queryTotal     *prometheus.CounterVec
	selectDuration *prometheus.HistogramVec
	pageTotal      *prometheus.CounterVec
	errorTotal     *prometheus.CounterVec
	inFlight       prometheus.Gauge
}

// NewMetricsProvider creates a Prometheus metrics provider.
func NewMetricsProvider(config MetricsConfig) (MetricsProvider, error) {
	if config.Namespace == "" {
		config.Namespace = "entrez"
	}
	if config.MetricsPath == "" {
		config.MetricsPath = "/metrics"
	}
	if config.MetricsPort == 0 {
		config.MetricsPort = 9090
	}
	if config.HistogramBuckets == nil {
		// Buckets in milliseconds
		config.HistogramBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}
	}

	if config.ConstLabels == nil {
		config.ConstLabels = prometheus.Labels{}
	}
	if config.ServiceName != "" {
		config.ConstLabels["service"] = config.ServiceName
	}
	if config.ServiceVersion != "" {
		config.ConstLabels["version"] = config.ServiceVersion
	}
	if config.Environment != "" {
		config.ConstLabels["environment"] = config.Environment
	}

	p := &PrometheusMetricsProvider{config: config}
	p.initializeMetrics()

	if err := p.registerMetrics(); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return p, nil
}

func (p *PrometheusMetricsProvider) initializeMetrics() {
	p.queryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   p.config.Namespace,
			Name:        "query_duration_milliseconds",
			Help:        "Duration of E-utility round trips in milliseconds",
			Buckets:     p.config.HistogramBuckets,
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"tool", "status"},
	)

	p.queryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Name:        "query_total",
			Help:        "Total number of E-utility round trips",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"tool", "status"},
	)

	p.selectDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   p.config.Namespace,
			Name:        "select_duration_milliseconds",
			Help:        "Duration of history selections in milliseconds",
			Buckets:     p.config.HistogramBuckets,
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"database", "status"},
	)

	p.pageTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Name:        "page_total",
			Help:        "Total number of pagination windows fetched",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"tool"},
	)

	p.errorTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Name:        "error_total",
			Help:        "Total number of SDK errors by category",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"category"},
	)

	p.inFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   p.config.Namespace,
			Name:        "requests_in_flight",
			Help:        "Number of outstanding round trips",
			ConstLabels: p.config.ConstLabels,
		},
	)
}

func (p *PrometheusMetricsProvider) registerMetrics() error {
	collectors := []prometheus.Collector{
		p.queryDuration,
		p.queryTotal,
		p.selectDuration,
		p.pageTotal,
		p.errorTotal,
		p.inFlight,
	}

	for _, collector := range collectors {
		if err := prometheus.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}

// RecordQuery records one tool round trip.
func (p *PrometheusMetricsProvider) RecordQuery(_ context.Context, tool, status string, duration time.Duration) {
	labels := prometheus.Labels{"tool": tool, "status": status}
	p.queryDuration.With(labels).Observe(float64(duration.Milliseconds()))
	p.queryTotal.With(labels).Inc()
}

// RecordSelect records one history selection.
func (p *PrometheusMetricsProvider) RecordSelect(_ context.Context, database, status string, duration time.Duration) {
	labels := prometheus.Labels{"database": database, "status": status}
	p.selectDuration.With(labels).Observe(float64(duration.Milliseconds()))
}

// RecordPage records one fetched pagination window.
func (p *PrometheusMetricsProvider) RecordPage(_ context.Context, tool string) {
	p.pageTotal.With(prometheus.Labels{"tool": tool}).Inc()
}

// RecordError records an error by category.
func (p *PrometheusMetricsProvider) RecordError(_ context.Context, category string) {
	p.errorTotal.With(prometheus.Labels{"category": category}).Inc()
}

// RecordInFlight tracks outstanding round trips.
func (p *PrometheusMetricsProvider) RecordInFlight(_ context.Context, delta int) {
	p.inFlight.Add(float64(delta))
}

// Start serves the metrics endpoint in the background.
func (p *PrometheusMetricsProvider) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(p.config.MetricsPath, promhttp.Handler())

	p.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", p.config.MetricsPort),
		Handler: mux,
	}

	go func() {
		_ = p.server.ListenAndServe()
	}()

	return nil
}

// Shutdown gracefully shuts down the metrics server.
func (p *PrometheusMetricsProvider) Shutdown(ctx context.Context) error {
	if p.server != nil {
		return p.server.Shutdown(ctx)
	}
	return nil
}

// NopMetrics returns a provider that records nothing. Useful for tests
// and callers that do not run a metrics endpoint.
func NopMetrics() MetricsProvider { return nopMetrics{} }

type nopMetrics struct{}

func (nopMetrics) RecordQuery(context.Context, string, string, time.Duration)  {}
func (nopMetrics) RecordSelect(context.Context, string, string, time.Duration) {}
func (nopMetrics) RecordPage(context.Context, string)                          {}
func (nopMetrics) RecordError(context.Context, string)                         {}
func (nopMetrics) RecordInFlight(context.Context, int)                         {}
func (nopMetrics) Start(context.Context) error                                 { return nil }
func (nopMetrics) Shutdown(context.Context) error                              { return nil }
