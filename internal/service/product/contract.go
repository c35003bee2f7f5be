//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_test
package product

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
	GetByID(ctx context.Context, id int64) (*entities.Product, error)
	GetAll(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	Update(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
	Delete(ctx context.Context, id int64) error
}
