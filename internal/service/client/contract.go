//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_test
package client

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error)
	GetByID(ctx context.Context, id int64) (*entities.Client, error)
	GetAll(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error)
	Update(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error)
	Delete(ctx context.Context, id int64) error
}
