//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_post_test
package client_post

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
	CreateClient(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error)
}
