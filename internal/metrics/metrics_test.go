package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestRecorder(t *testing.T) (Recorder, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	rec, err := NewRecorder(provider.Meter("test"))
	require.NoError(t, err)

	return rec, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestRecorder_RecordError(t *testing.T) {
	rec, reader := newTestRecorder(t)
	ctx := context.Background()

	rec.RecordError(ctx, 400, "validation")
	rec.RecordError(ctx, 400, "validation")
	rec.RecordError(ctx, 500, "unclassified")

	got := collect(t, reader)
	sum, ok := got["gateway.errors"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 2)

	counts := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		kind, _ := dp.Attributes.Value(attribute.Key("error.kind"))
		counts[kind.AsString()] = dp.Value
	}
	assert.Equal(t, int64(2), counts["validation"])
	assert.Equal(t, int64(1), counts["unclassified"])
}

func TestRecorder_RecordProbe(t *testing.T) {
	rec, reader := newTestRecorder(t)
	ctx := context.Background()

	rec.RecordProbe(ctx, true, 15*time.Millisecond)
	rec.RecordProbe(ctx, false, 2*time.Second)

	got := collect(t, reader)

	sum, ok := got["gateway.health.probes"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 2)
	for _, dp := range sum.DataPoints {
		assert.Equal(t, int64(1), dp.Value)
	}

	hist, ok := got["gateway.health.probe.duration_ms"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var total float64
	for _, dp := range hist.DataPoints {
		total += dp.Sum
	}
	assert.InDelta(t, 2015.0, total, 0.001)
}

func TestNop(t *testing.T) {
	rec := Nop()

	assert.NotPanics(t, func() {
		rec.RecordError(context.Background(), 500, "unclassified")
		rec.RecordProbe(context.Background(), true, time.Second)
	})
}
