// Package metrics defines the prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ordering"

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "route"})

	reg.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// OrderMetrics tracks how many stored orders sit in each status.
type OrderMetrics struct {
	ByStatus *prometheus.GaugeVec
}

func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	byStatus := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "by_status",
		Help:      "Number of stored orders per status.",
	}, []string{"status"})

	reg.MustRegister(byStatus)
	return &OrderMetrics{ByStatus: byStatus}
}

// SetStatusCount records the current number of orders in status.
func (m *OrderMetrics) SetStatusCount(status string, count int64) {
	m.ByStatus.WithLabelValues(status).Set(float64(count))
}

// Handler exposes everything registered in gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
