//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_count_get_test
package courier_count_get

import (
	"context"

	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CountActiveCouriersByZone(ctx context.Context, zoneID int64) (int64, error)
}
