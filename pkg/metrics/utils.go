package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementRequests counts one finished RPC.
// Example: metrics.IncrementRequests("Embeddings", "OK")
func (m *Metrics) IncrementRequests(method, code string) {
	m.rpcRequests.WithLabelValues(method, code).Inc()
}

// RecordRequestDuration records the time since start for an RPC method.
// Example: defer metrics.RecordRequestDuration(time.Now(), "Metadata")
func (m *Metrics) RecordRequestDuration(start time.Time, method string) {
	m.rpcDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// TrackInFlight increments the in-flight gauge and returns its decrement.
func (m *Metrics) TrackInFlight(method string) func() {
	g := m.rpcInFlight.WithLabelValues(method)
	g.Inc()
	return g.Dec
}

// ObserveBackendCall records the latency of one backend call.
func (m *Metrics) ObserveBackendCall(operation, outcome string, d time.Duration) {
	m.backendDuration.WithLabelValues(operation, outcome).Observe(d.Seconds())
}

func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}

func createGaugeVec(namespace, name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}
