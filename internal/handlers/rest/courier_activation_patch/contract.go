//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_activation_patch_test
package courier_activation_patch

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
	SetCourierActive(ctx context.Context, id int64, active bool) (*entities.Courier, error)
}
