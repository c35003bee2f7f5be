//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_courier_patch_test
package parcel_courier_patch

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
	AssignCourier(ctx context.Context, parcelID, courierID int64) (*entities.Parcel, error)
}
