//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_details_get_test
package parcel_details_get

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
	GetParcelDetails(ctx context.Context, id int64) (*entities.ParcelDetails, error)
}
