//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_overdue_get_test
package parcels_overdue_get

import (
	"context"
	"time"

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
	GetOverdueParcels(ctx context.Context, now time.Time) ([]entities.Parcel, error)
}
