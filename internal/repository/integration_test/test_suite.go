package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/postgres"
	"logistics/pkg/logger/zap_adapter"
	"logistics/pkg/querier"
	"logistics/pkg/tx"
)

var (
	querierInstance *querier.Querier
	txInstance      *tx.Manager
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		migrator, err := postgres.NewMigrator(connPool)
		if err != nil {
			panic(err)
		}
		if err := migrator.Up(ctx); err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txInstance = tx.New(connPool)
	})

	return querierInstance
}

// GetTxManager возвращает менеджер транзакций поверх того же пула, что и GetQuerier.
func GetTxManager() *tx.Manager {
	GetQuerier()
	return txInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE parcel_status_history, parcel_items, parcels,
			couriers, zones, products, recipients, clients
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
