package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/handler/grpc"
	"github.com/MKhiriev/api-gateway/internal/handler/http"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/metrics"
	"github.com/MKhiriev/api-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler per configured listener. metricsHandler may
// be nil when the metrics exporter is push-based.
func NewHandlers(services *service.Services, cfg config.Server, recorder metrics.Recorder, metricsHandler nethttp.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, recorder, metricsHandler, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
