package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the service registry, the gateway collectors and the HTTP
// server exposing them.
type Metrics struct {
	Server   *http.Server
	Registry *prometheus.Registry

	enabled bool

	rpcRequests     *prometheus.CounterVec
	rpcDuration     *prometheus.HistogramVec
	rpcInFlight     *prometheus.GaugeVec
	backendDuration *prometheus.HistogramVec
}

// backendBuckets cover fast metadata lookups up to long batch inferences.
var backendBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// every metric carries service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	m := &Metrics{
		Registry: registry,
		enabled:  cfg.Enabled,
	}

	m.rpcRequests = createCounterVec(cfg.Namespace, "rpc_requests_total",
		"Total number of handled RPCs by method and status code.", []string{"method", "code"})
	m.rpcDuration = createHistogramVec(cfg.Namespace, "rpc_request_duration_seconds",
		"Duration of handled RPCs in seconds.", []string{"method"}, prometheus.DefBuckets)
	m.rpcInFlight = createGaugeVec(cfg.Namespace, "rpc_in_flight",
		"Number of RPCs currently being handled.", []string{"method"})
	m.backendDuration = createHistogramVec(cfg.Namespace, "backend_request_duration_seconds",
		"Duration of calls to the inference backend in seconds.", []string{"operation", "outcome"}, backendBuckets)

	wrappedRegistry.MustRegister(
		m.rpcRequests,
		m.rpcDuration,
		m.rpcInFlight,
		m.backendDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: wrappedRegistry}))

	m.Server = &http.Server{
		Addr:    address,
		Handler: mux,
	}
	return m
}
