// Package tracer provides OpenTelemetry tracing for the gateway.
//
// One span is started per RPC by the gateway interceptor and one child span
// per backend call by the REST client. Trace context crosses process
// boundaries as W3C headers: GetCarrier exports the context of the current
// span for an outbound request and SetCarrierOnContext imports the headers
// of an inbound one.
//
// Spans are exported over OTLP/HTTP when EnableExport is set; otherwise
// they are produced for log correlation only.
package tracer
