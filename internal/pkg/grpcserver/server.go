package grpcserver

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"logistics/pkg/logger"
)

const (
	keepaliveMinTime = 30 * time.Second
	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second
)

// Server отдает стандартный grpc.health.v1. Статус переводится в NOT_SERVING
// в начале остановки, чтобы проба успела снять под с балансировки.
type Server struct {
	log    logger.Logger
	port   string
	server *grpc.Server
	health *health.Server
}

func New(log logger.Logger, port string) *Server {
	srv := grpc.NewServer(
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             keepaliveMinTime,
			PermitWithoutStream: false,
		}),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)

	return &Server{
		log: log.With(
			logger.NewField("component", "grpc-server"),
			logger.NewField("port", port),
		),
		port:   port,
		server: srv,
		health: healthServer,
	}
}

// Run блокирует до отмены ctx, затем останавливает сервер.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("gRPC server starting")
		errCh <- s.server.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.Shutdown()
		<-errCh
		return nil
	}
}

func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
	s.log.Info("gRPC server stopped")
}
