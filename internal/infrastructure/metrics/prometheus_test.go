package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodegapp/bodegapp-api/internal/infrastructure/metrics"
)

func TestMetrics_StockAlerts(t *testing.T) {
	m := metrics.New("test")

	m.AddStockAlerts("critical", 2)
	m.AddStockAlerts("critical", 1)
	m.AddStockAlerts("warning", 0)

	expected := `
# HELP test_stock_alerts_total Stock alerts emitted by reorder status
# TYPE test_stock_alerts_total counter
test_stock_alerts_total{status="critical"} 3
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_stock_alerts_total"))
}

func TestMetrics_HTTPYAnalisis(t *testing.T) {
	m := metrics.New("test")

	m.ObserveHTTP("GET", "/api/analytics/rotation", 200, 15*time.Millisecond)
	m.ObserveHTTP("GET", "/api/analytics/rotation", 200, 5*time.Millisecond)
	m.ObserveAnalysis("rotation", time.Millisecond)
	m.IncSnapshotLoad("store")

	n, err := testutil.GatherAndCount(m.Registry(), "test_http_requests_total", "test_analytics_duration_seconds", "test_snapshot_loads_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New("")
	m.IncSnapshotLoad("cache")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `bodegapp_snapshot_loads_total{source="cache"} 1`)
}
