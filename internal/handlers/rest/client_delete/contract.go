//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_delete_test
package client_delete

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
	DeleteClient(ctx context.Context, id int64) error
}
