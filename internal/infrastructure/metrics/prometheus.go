package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores de la API sobre un registry propio
// (evita colisiones con el registry global en tests).
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	analysisDuration *prometheus.HistogramVec
	stockAlerts      *prometheus.CounterVec
	snapshotLoads    *prometheus.CounterVec
}

// New registra los colectores con el prefijo dado (ej. "bodegapp").
func New(prefix string) *Metrics {
	if prefix == "" {
		prefix = "bodegapp"
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		analysisDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_analytics_duration_seconds",
			Help:    "Duration of analytics computations in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"operation"}),
		stockAlerts: f.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_stock_alerts_total",
			Help: "Stock alerts emitted by reorder status",
		}, []string{"status"}),
		snapshotLoads: f.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_snapshot_loads_total",
			Help: "Tenant snapshots loaded by source (cache, store, request)",
		}, []string{"source"}),
	}
}

// ObserveHTTP registra una petición ya respondida. path debe ser la ruta
// registrada (no la URL cruda) para acotar la cardinalidad.
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func (m *Metrics) ObserveAnalysis(operation string, d time.Duration) {
	m.analysisDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) AddStockAlerts(status string, n int) {
	if n <= 0 {
		return
	}
	m.stockAlerts.WithLabelValues(status).Add(float64(n))
}

func (m *Metrics) IncSnapshotLoad(source string) {
	m.snapshotLoads.WithLabelValues(source).Inc()
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry para tests y colectores adicionales.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Nop descarta las observaciones del caso de uso.
type Nop struct{}

func (Nop) ObserveAnalysis(string, time.Duration) {}
func (Nop) AddStockAlerts(string, int)            {}
func (Nop) IncSnapshotLoad(string)                {}
