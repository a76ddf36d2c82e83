package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/metrics"
	"github.com/MKhiriev/api-gateway/internal/service"
	"github.com/MKhiriev/api-gateway/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	recorder  metrics.Recorder

	// metricsHandler serves /metrics; nil when the exporter is push-based.
	metricsHandler http.Handler

	allowedOrigins []string
	maxBodyBytes   int64
	now            func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, recorder metrics.Recorder, metricsHandler http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = config.DefaultAllowedOrigins
	}
	if recorder == nil {
		recorder = metrics.Nop()
	}

	return &Handler{
		services:       services,
		validator:      validators.NewStructValidator(),
		recorder:       recorder,
		metricsHandler: metricsHandler,
		allowedOrigins: origins,
		maxBodyBytes:   config.MaxBodyBytes,
		now:            time.Now,
		logger:         logger,
	}
}
