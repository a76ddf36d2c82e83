package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/api-gateway/internal/config"
	myGRPC "github.com/MKhiriev/api-gateway/internal/handler/grpc"
	"github.com/MKhiriev/api-gateway/internal/logger"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	g := &grpcServer{
		gRPCNetListener: listener,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	g.server = grpc.NewServer(grpc.ChainUnaryInterceptor(g.loggingInterceptor))
	healthpb.RegisterHealthServer(g.server, handler)

	return g, nil
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}

	return nil
}

// Shutdown waits for pending RPCs, forcing a stop after the shutdown
// timeout.
func (g *grpcServer) Shutdown() {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(g.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-stopped:
		g.logger.Info().Msg("GRPC server Shutdown")
	case <-timer.C:
		g.logger.Warn().Msg("gRPC server did not drain in time, stopping")
		g.server.Stop()
	}
}

func (g *grpcServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	g.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
