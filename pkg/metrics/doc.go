// Package metrics exposes gateway metrics to Prometheus.
//
// NewMetrics creates an isolated registry whose metrics all carry a constant
// service label, registers the gateway collectors and builds an HTTP server
// serving them at /metrics:
//
//	rpc_requests_total{method, code}
//	rpc_request_duration_seconds{method}
//	rpc_in_flight{method}
//	backend_request_duration_seconds{operation, outcome}
//
// With EnableDefaultCollectors the Go runtime, process and build info
// collectors are registered as well.
//
// FXModule provides *Metrics and the Collector interface, and ties the
// metrics server to the application lifecycle.
package metrics
