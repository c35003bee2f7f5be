//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_get_test
package zone_get

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
	GetZone(ctx context.Context, id int64) (*entities.Zone, error)
}
