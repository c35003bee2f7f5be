//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=recipient_test
package recipient

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error)
	GetByID(ctx context.Context, id int64) (*entities.Recipient, error)
	GetAll(ctx context.Context, filter entities.RecipientFilter) ([]entities.Recipient, error)
	Update(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error)
	Delete(ctx context.Context, id int64) error
}
