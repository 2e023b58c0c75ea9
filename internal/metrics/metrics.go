package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "mongouri"
	subsystem = "normalize"
)

// Metrics struct manages all Prometheus metrics.
type Metrics struct {
	// Normalization outcome metrics.
	urisProcessed *prometheus.CounterVec
	urisChanged   prometheus.Counter
	urisInvalid   prometheus.Counter

	// Detail metrics.
	duplicateKeysCollapsed prometheus.Counter
	decodeWarnings         prometheus.Counter
	normalizeDuration      prometheus.Histogram

	// HTTP server.
	server *http.Server
}

// NewMetrics creates a new Metrics instance on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates a new Metrics instance in the specified registry.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.urisProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "uris_processed_total",
			Help:      "Total number of connection strings processed",
		},
		[]string{"result"},
	)

	m.urisChanged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "uris_changed_total",
			Help:      "Number of connection strings altered by normalization",
		},
	)

	m.urisInvalid = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "uris_invalid_total",
			Help:      "Number of inputs that did not parse as connection strings",
		},
	)

	m.duplicateKeysCollapsed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duplicate_keys_collapsed_total",
			Help:      "Number of repeated query parameter occurrences removed",
		},
	)

	m.decodeWarnings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_warnings_total",
			Help:      "Number of credential slots that could not be percent-decoded",
		},
	)

	m.normalizeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Time taken to normalize a batch of connection strings (seconds)",
			Buckets:   prometheus.DefBuckets,
		},
	)

	registry.MustRegister(
		m.urisProcessed,
		m.urisChanged,
		m.urisInvalid,
		m.duplicateKeysCollapsed,
		m.decodeWarnings,
		m.normalizeDuration,
	)

	return m
}

// StartMetricsServer starts an HTTP server to expose metrics.
func (m *Metrics) StartMetricsServer(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	m.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	fmt.Printf("Starting metrics server: %s\n", addr)

	// Start server in a goroutine.
	errChan := make(chan error, 1)
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to start metrics server: %w", err)
		}
	}()

	// Wait for context cancellation or server error.
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := m.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown metrics server: %w", err)
		}
		return nil
	case err := <-errChan:
		return err
	}
}

// StopMetricsServer stops the metrics server.
func (m *Metrics) StopMetricsServer() error {
	if m.server != nil {
		if err := m.server.Close(); err != nil {
			return fmt.Errorf("failed to stop metrics server: %w", err)
		}
	}
	return nil
}

// IncrementProcessed increments the number of processed connection strings.
func (m *Metrics) IncrementProcessed(result string) {
	m.urisProcessed.WithLabelValues(result).Inc()
}

// IncrementChanged increments the number of connection strings normalization altered.
func (m *Metrics) IncrementChanged() {
	m.urisChanged.Inc()
}

// IncrementInvalid increments the number of unparseable inputs.
func (m *Metrics) IncrementInvalid() {
	m.urisInvalid.Inc()
}

// AddDuplicateKeysCollapsed adds the number of repeated parameter occurrences removed.
func (m *Metrics) AddDuplicateKeysCollapsed(count int) {
	m.duplicateKeysCollapsed.Add(float64(count))
}

// IncrementDecodeWarnings increments the number of credential decode warnings.
func (m *Metrics) IncrementDecodeWarnings() {
	m.decodeWarnings.Inc()
}

// RecordDuration records the time taken to normalize a batch.
func (m *Metrics) RecordDuration(duration time.Duration) {
	m.normalizeDuration.Observe(duration.Seconds())
}

// GetMetricsHandlerWithRegistry returns a metrics HTTP handler using the specified registry.
func (m *Metrics) GetMetricsHandlerWithRegistry(registry prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
