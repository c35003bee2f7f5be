// Команда healthprobe опрашивает grpc.health.v1 сервиса и возвращает код выхода 0 или 1.
// Используется в HEALTHCHECK контейнера, где нет curl.
package main

import (
	"context"
	stdlog "log"
	"os"
	"time"

	"logistics/internal/pkg/config"
	"logistics/internal/pkg/grpcclient"
	"logistics/pkg/logger"
	"logistics/pkg/logger/zap_adapter"
)

const probeTimeout = 5 * time.Second

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	os.Exit(run(log))
}

func run(log logger.Logger) int {
	cfg, err := config.LoadHealthProbe()
	if err != nil {
		log.Error("load config", logger.NewField("error", err))
		return 1
	}

	conn, err := grpcclient.NewConnClient(cfg.GRPCHost)
	if err != nil {
		log.Error("grpc client", logger.NewField("error", err))
		return 1
	}
	defer func() {
		_ = conn.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err := grpcclient.NewHealthProbe(log, cfg, conn, probeTimeout).Check(ctx); err != nil {
		return 1
	}
	return 0
}
