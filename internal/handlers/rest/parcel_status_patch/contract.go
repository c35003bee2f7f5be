//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_status_patch_test
package parcel_status_patch

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
	ChangeStatus(ctx context.Context, parcelID int64, status entities.ParcelStatus, comment string) (*entities.Parcel, error)
}
