//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_by_phone_get_test
package courier_by_phone_get

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
	GetCourierByPhone(ctx context.Context, phone string) (*entities.Courier, error)
}
