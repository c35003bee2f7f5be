//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=recipient_post_test
package recipient_post

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
	CreateRecipient(ctx context.Context, recipientModify entities.RecipientModify) (*entities.Recipient, error)
}
