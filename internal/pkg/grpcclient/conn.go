package grpcclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"logistics/internal/pkg/config"
	"logistics/pkg/logger"
	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false
)

func NewConnClient(host string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		host,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}
	return conn, nil
}

// HealthProbe опрашивает grpc.health.v1 сервиса, ретраит пока не получит SERVING.
type HealthProbe struct {
	log     logger.Logger
	client  healthpb.HealthClient
	retrier retrierconfig.Retrier
}

func NewHealthProbe(log logger.Logger, cfg *config.HealthProbe, conn grpc.ClientConnInterface, maxElapsed time.Duration) *HealthProbe {
	return &HealthProbe{
		log: log.With(
			logger.NewField("component", "grpc-healthprobe"),
			logger.NewField("host", cfg.GRPCHost),
		),
		client: healthpb.NewHealthClient(conn),
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     time.Second,
			MaxElapsedTime:  maxElapsed,
			Randomization:   0.5,
			Multiplier:      2,
			ShouldRetry:     nil, // все ошибки ретраим
		}),
	}
}

func (p *HealthProbe) Check(ctx context.Context) error {
	var attempt uint64
	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		resp, err := p.client.Check(ctx, &healthpb.HealthCheckRequest{})
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("service status %s", resp.GetStatus())
		}
		return nil
	})
	if err != nil {
		p.log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("gRPC health check failed")
		return fmt.Errorf("health check: %w", err)
	}

	p.log.With(
		logger.NewField("attempts", attempt),
	).Info("gRPC health check passed")
	return nil
}
