package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Parcel struct {
	ID                int64
	TrackingNumber    string
	Description       *string
	TotalWeight       decimal.Decimal
	Status            ParcelStatus
	Priority          ParcelPriority
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

type ParcelStatus string

const (
	ParcelCreated       ParcelStatus = "created"
	ParcelInPreparation ParcelStatus = "in_preparation"
	ParcelCollected     ParcelStatus = "collected"
	ParcelInStock       ParcelStatus = "in_stock"
	ParcelInTransit     ParcelStatus = "in_transit"
	ParcelDelivered     ParcelStatus = "delivered"
)

func (s ParcelStatus) String() string {
	return string(s)
}

func (s ParcelStatus) IsValid() bool {
	switch s {
	case ParcelCreated, ParcelInPreparation, ParcelCollected,
		ParcelInStock, ParcelInTransit, ParcelDelivered:
		return true
	default:
		return false
	}
}

type ParcelPriority string

const (
	PriorityNormal     ParcelPriority = "normal"
	PriorityUrgent     ParcelPriority = "urgent"
	PriorityVeryUrgent ParcelPriority = "very_urgent"
)

const DefaultPriority = PriorityNormal

func (p ParcelPriority) String() string {
	return string(p)
}

func (p ParcelPriority) IsValid() bool {
	switch p {
	case PriorityNormal, PriorityUrgent, PriorityVeryUrgent:
		return true
	default:
		return false
	}
}

type ParcelItem struct {
	ID        int64
	ParcelID  int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// ParcelDetails - посылка вместе с позициями и историей (история от новых к старым).
type ParcelDetails struct {
	Parcel  Parcel
	Items   []ParcelItem
	History []StatusHistoryEntry
}

func (d *ParcelDetails) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

type ParcelItemCreate struct {
	ProductID int64
	Quantity  int
}

type ParcelCreate struct {
	ClientID          int64
	RecipientID       int64
	ZoneID            int64
	Priority          ParcelPriority
	PlannedDeliveryAt *time.Time
	Description       *string
	Items             []ParcelItemCreate
}

type ParcelModify struct {
	ID                *int64
	TrackingNumber    *string
	Description       *string
	TotalWeight       *decimal.Decimal
	Status            *ParcelStatus
	Priority          *ParcelPriority
	DestinationCity   *string
	ClientID          *int64
	RecipientID       *int64
	ZoneID            *int64
	CourierID         *int64
	PlannedDeliveryAt *time.Time
	DeliveredAt       *time.Time
}

type ParcelFilter struct {
	Status    *ParcelStatus
	Priority  *ParcelPriority
	ClientID  *int64
	CourierID *int64
	ZoneID    *int64
}
