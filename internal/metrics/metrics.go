package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Recorder records request-boundary metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic and never fail the caller.
type Recorder interface {
	// RecordError counts one normalized error response.
	RecordError(ctx context.Context, statusCode int, kind string)

	// RecordProbe records the outcome and latency of one dependency probe.
	RecordProbe(ctx context.Context, connected bool, duration time.Duration)
}

type recorder struct {
	errorCount    metric.Int64Counter
	probeCount    metric.Int64Counter
	probeDuration metric.Float64Histogram
}

// NewRecorder creates the gateway instruments on meter.
func NewRecorder(meter metric.Meter) (Recorder, error) {
	errorCount, err := meter.Int64Counter(
		"gateway.errors",
		metric.WithDescription("Total number of normalized error responses"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	probeCount, err := meter.Int64Counter(
		"gateway.health.probes",
		metric.WithDescription("Total number of dependency probes"),
		metric.WithUnit("{probe}"),
	)
	if err != nil {
		return nil, err
	}

	probeDuration, err := meter.Float64Histogram(
		"gateway.health.probe.duration_ms",
		metric.WithDescription("Dependency probe duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &recorder{
		errorCount:    errorCount,
		probeCount:    probeCount,
		probeDuration: probeDuration,
	}, nil
}

func (r *recorder) RecordError(ctx context.Context, statusCode int, kind string) {
	r.errorCount.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("http.status_code", statusCode),
		attribute.String("error.kind", kind),
	))
}

func (r *recorder) RecordProbe(ctx context.Context, connected bool, duration time.Duration) {
	status := "disconnected"
	if connected {
		status = "connected"
	}
	opt := metric.WithAttributes(attribute.String("dependency.status", status))

	r.probeCount.Add(ctx, 1, opt)
	r.probeDuration.Record(ctx, float64(duration.Microseconds())/1000, opt)
}

type noopRecorder struct{}

// Nop returns a Recorder that discards everything.
func Nop() Recorder {
	return noopRecorder{}
}

func (noopRecorder) RecordError(ctx context.Context, statusCode int, kind string) {}

func (noopRecorder) RecordProbe(ctx context.Context, connected bool, duration time.Duration) {}
