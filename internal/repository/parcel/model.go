package parcel

import (
	"time"

	"github.com/shopspring/decimal"
)

type ParcelDB struct {
	ID                int64
	TrackingNumber    string
	Description       *string
	TotalWeight       decimal.Decimal
	Status            string
	Priority          string
	DestinationCity   string
	ClientID          int64
	RecipientID       int64
	ZoneID            int64
	CourierID         *int64
	PlannedDeliveryAt *time.Time
	DeliveredAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ParcelModifyDB struct {
	ID                *int64
	TrackingNumber    *string
	Description       *string
	TotalWeight       *decimal.Decimal
	Status            *string
	Priority          *string
	DestinationCity   *string
	ClientID          *int64
	RecipientID       *int64
	ZoneID            *int64
	CourierID         *int64
	PlannedDeliveryAt *time.Time
	DeliveredAt       *time.Time
}

type ParcelItemDB struct {
	ID        int64
	ParcelID  int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}
