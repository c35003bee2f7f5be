//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_put_test
package zone_put

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
	UpdateZone(ctx context.Context, zoneModify entities.ZoneModify) (*entities.Zone, error)
}
