package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetricsWithRegistry(registry)

	assert.NotNil(t, metrics)
	assert.NotNil(t, metrics.urisProcessed)
	assert.NotNil(t, metrics.urisChanged)
	assert.NotNil(t, metrics.urisInvalid)
	assert.NotNil(t, metrics.duplicateKeysCollapsed)
	assert.NotNil(t, metrics.decodeWarnings)
	assert.NotNil(t, metrics.normalizeDuration)
}

func TestMetricsMethods(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetricsWithRegistry(registry)

	metrics.IncrementProcessed("changed")
	metrics.IncrementProcessed("unchanged")
	metrics.IncrementChanged()
	metrics.IncrementInvalid()
	metrics.AddDuplicateKeysCollapsed(2)
	metrics.IncrementDecodeWarnings()
	metrics.RecordDuration(150 * time.Millisecond)

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetricsHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetricsWithRegistry(registry)

	metrics.IncrementProcessed("changed")
	metrics.IncrementChanged()

	handler := metrics.GetMetricsHandlerWithRegistry(registry)
	require.NotNil(t, handler)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "mongouri_normalize_uris_processed_total")
	assert.Contains(t, string(body), "mongouri_normalize_uris_changed_total")
}
