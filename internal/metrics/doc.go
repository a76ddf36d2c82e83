// Package metrics records the gateway's request-boundary metrics through
// OpenTelemetry and wires the configured exporter.
//
// Instruments:
//   - gateway.errors                    counter, by http.status_code and error.kind
//   - gateway.health.probes             counter, by dependency.status
//   - gateway.health.probe.duration_ms  histogram of probe latency
//
// Exporters: "prometheus" (scraped from /metrics), "stdout", "otlp" (gRPC,
// endpoint from OTEL_EXPORTER_OTLP_*) and "none".
package metrics
