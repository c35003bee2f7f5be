// Команда migrator применяет goose-миграции к базе из POSTGRES_* окружения.
//
//	migrator [up|down|status|version]
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"logistics/internal/pkg/config"
	"logistics/internal/pkg/dotenv"
	"logistics/internal/pkg/postgres"
	"logistics/pkg/logger"
	"logistics/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger

	if _, err := dotenv.LoadIfExists(flag.NewFlagSet("migrator", flag.ContinueOnError), nil, dotenv.DefaultFile); err != nil {
		log.Error("failed to load .env file", logger.NewField("error", err))
		os.Exit(1)
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(context.Background(), log, command); err != nil {
		log.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, command string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool)
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Warn("failed to close migrator", logger.NewField("error", err))
		}
	}()

	switch command {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	case "version":
		var version int64
		version, err = migrator.Version(ctx)
		if err == nil {
			log.Info("current schema version", logger.NewField("version", version))
		}
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}

	log.Info("migration command finished", logger.NewField("command", command))
	return nil
}
