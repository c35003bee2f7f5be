//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_put_test
package product_put

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
	UpdateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
}
