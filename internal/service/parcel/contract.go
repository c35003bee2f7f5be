//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	CreateItems(ctx context.Context, parcelID int64, items []entities.ParcelItem) ([]entities.ParcelItem, error)
	GetItems(ctx context.Context, parcelID int64) ([]entities.ParcelItem, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Parcel, error)
	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)
	GetAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)
	GetOverdue(ctx context.Context, now time.Time) ([]entities.Parcel, error)
	CountOverdue(ctx context.Context, now time.Time) (int64, error)
	Update(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, parcelID int64, status entities.ParcelStatus, comment string) (*entities.StatusHistoryEntry, error)
	GetByParcelID(ctx context.Context, parcelID int64) ([]entities.StatusHistoryEntry, error)
}

type ClientService interface {
	GetClient(ctx context.Context, id int64) (*entities.Client, error)
}

type RecipientService interface {
	GetRecipient(ctx context.Context, id int64) (*entities.Recipient, error)
}

type ZoneService interface {
	GetZone(ctx context.Context, id int64) (*entities.Zone, error)
}

type ProductService interface {
	GetProduct(ctx context.Context, id int64) (*entities.Product, error)
}

type CourierService interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
}

type TrackingNumberGenerator interface {
	Generate() string
}

type DeliveryDeadlineFactory interface {
	CalculateDeadline(priority entities.ParcelPriority, baseTime time.Time) time.Time
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.ParcelStatusChanged) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
