package metrics

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/api-gateway/internal/logger"
)

func TestNewProvider_Prometheus(t *testing.T) {
	ctx := context.Background()
	p, err := NewProvider(ctx, ExporterPrometheus, "1.2.3", logger.Nop())
	require.NoError(t, err)
	defer p.Shutdown(ctx)

	p.Recorder.RecordError(ctx, 404, "application")
	require.NotNil(t, p.Handler())

	w := httptest.NewRecorder()
	p.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gateway_errors")
	assert.Contains(t, w.Body.String(), `error_kind="application"`)
}

func TestNewProvider_PrometheusRegistriesAreIsolated(t *testing.T) {
	ctx := context.Background()

	first, err := NewProvider(ctx, ExporterPrometheus, "1", logger.Nop())
	require.NoError(t, err)
	defer first.Shutdown(ctx)

	second, err := NewProvider(ctx, ExporterPrometheus, "1", logger.Nop())
	require.NoError(t, err)
	defer second.Shutdown(ctx)
}

func TestNewProvider_Stdout(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	p, err := newProvider(ctx, ExporterStdout, "1", &buf, logger.Nop())
	require.NoError(t, err)

	p.Recorder.RecordProbe(ctx, true, 0)
	assert.Nil(t, p.Handler())
	require.NoError(t, p.Shutdown(ctx))

	assert.Contains(t, buf.String(), "gateway.health.probes")
}

func TestNewProvider_None(t *testing.T) {
	for _, name := range []string{ExporterNone, ""} {
		p, err := NewProvider(context.Background(), name, "1", logger.Nop())

		require.NoError(t, err)
		assert.Equal(t, Nop(), p.Recorder)
		assert.Nil(t, p.Handler())
		assert.NoError(t, p.Shutdown(context.Background()))
	}
}

func TestNewProvider_OTLPWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")

	_, err := NewProvider(context.Background(), ExporterOTLP, "1", logger.Nop())

	assert.ErrorIs(t, err, ErrOTLPEndpointNotFound)
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(context.Background(), "statsd", "1", logger.Nop())

	assert.ErrorIs(t, err, ErrUnknownExporter)
}

func TestProvider_ShutdownNil(t *testing.T) {
	var p *Provider
	assert.NoError(t, p.Shutdown(context.Background()))
}
