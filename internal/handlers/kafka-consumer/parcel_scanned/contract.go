//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_scanned_test
package parcel_scanned

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessScanEvent(ctx context.Context, event entities.ScanEvent) (*entities.Parcel, error)
}
