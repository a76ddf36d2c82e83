// Package grpc exposes the composite health report over the standard gRPC
// health checking protocol (grpc.health.v1).
package grpc

import (
	"context"

	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/service"
	"github.com/MKhiriev/api-gateway/models"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the service name accepted by Check next to the empty
// (whole server) name.
const ServiceName = "api-gateway"

// Handler is the root gRPC transport handler. It implements
// [healthpb.HealthServer]; Watch and List stay unimplemented.
type Handler struct {
	healthpb.UnimplementedHealthServer

	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check maps the composite report onto the gRPC serving status: OK is
// SERVING, DEGRADED and a failed check are NOT_SERVING.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	report, err := h.services.HealthService.Check(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("gRPC health check failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	if report.Status != models.HealthStatusOK {
		h.logger.Warn().
			Str("status", string(report.Status)).
			Str("database", string(report.DependencyStatus)).
			Msg("gRPC health check degraded")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
