package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/MKhiriev/api-gateway/internal/logger"
)

const (
	serviceName = "api-gateway"
	meterName   = "github.com/MKhiriev/api-gateway"
)

// Provider owns the meter provider behind [Recorder].
type Provider struct {
	Recorder Recorder

	meterProvider *sdkmetric.MeterProvider
	handler       http.Handler
}

// NewProvider builds the meter provider for exporter and the gateway
// instruments on top of it. The "none" exporter yields a no-op [Recorder].
func NewProvider(ctx context.Context, exporter, version string, log *logger.Logger) (*Provider, error) {
	return newProvider(ctx, exporter, version, os.Stdout, log)
}

func newProvider(ctx context.Context, exporter, version string, stdout io.Writer, log *logger.Logger) (*Provider, error) {
	registry := promclient.NewRegistry()

	reader, err := newReader(ctx, exporter, registry, stdout)
	if err != nil {
		return nil, err
	}
	if reader == nil {
		log.Info().Msg("metrics are disabled")
		return &Provider{Recorder: Nop()}, nil
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	rec, err := NewRecorder(meterProvider.Meter(meterName))
	if err != nil {
		return nil, errors.Join(err, meterProvider.Shutdown(ctx))
	}

	p := &Provider{Recorder: rec, meterProvider: meterProvider}
	if exporter == ExporterPrometheus {
		p.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	log.Info().Str("exporter", exporter).Msg("metrics provider created")
	return p, nil
}

// Handler returns the Prometheus scrape handler, or nil for push exporters.
func (p *Provider) Handler() http.Handler {
	return p.handler
}

// Shutdown flushes pending metrics and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
