package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"logistics/internal/entities"
)

type Parcel struct {
	ID                int64           `json:"id"`
	TrackingNumber    string          `json:"tracking_number"`
	Description       *string         `json:"description,omitempty"`
	TotalWeight       decimal.Decimal `json:"total_weight"`
	Status            string          `json:"status"`
	Priority          string          `json:"priority"`
	DestinationCity   string          `json:"destination_city"`
	ClientID          int64           `json:"client_id"`
	RecipientID       int64           `json:"recipient_id"`
	ZoneID            int64           `json:"zone_id"`
	CourierID         *int64          `json:"courier_id,omitempty"`
	PlannedDeliveryAt *time.Time      `json:"planned_delivery_at,omitempty"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type ParcelItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type StatusHistoryEntry struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	Comment   string    `json:"comment"`
	ChangedAt time.Time `json:"changed_at"`
}

// ParcelDetails разворачивает поля посылки на верхний уровень ответа.
type ParcelDetails struct {
	Parcel
	Items      []ParcelItem         `json:"items"`
	History    []StatusHistoryEntry `json:"history"`
	TotalPrice decimal.Decimal      `json:"total_price"`
}

type ParcelItemCreate struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type ParcelCreate struct {
	ClientID          int64              `json:"client_id"`
	RecipientID       int64              `json:"recipient_id"`
	ZoneID            int64              `json:"zone_id"`
	Priority          string             `json:"priority"`
	PlannedDeliveryAt *time.Time         `json:"planned_delivery_at"`
	Description       *string            `json:"description"`
	Items             []ParcelItemCreate `json:"items"`
}

type ParcelStatusChange struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

type ParcelCourierAssign struct {
	CourierID int64 `json:"courier_id"`
}

func (c ParcelCreate) ToEntity() entities.ParcelCreate {
	items := make([]entities.ParcelItemCreate, len(c.Items))
	for i, item := range c.Items {
		items[i] = entities.ParcelItemCreate{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return entities.ParcelCreate{
		ClientID:          c.ClientID,
		RecipientID:       c.RecipientID,
		ZoneID:            c.ZoneID,
		Priority:          entities.ParcelPriority(c.Priority),
		PlannedDeliveryAt: c.PlannedDeliveryAt,
		Description:       c.Description,
		Items:             items,
	}
}

func ParcelFromEntity(p entities.Parcel) Parcel {
	return Parcel{
		ID:                p.ID,
		TrackingNumber:    p.TrackingNumber,
		Description:       p.Description,
		TotalWeight:       p.TotalWeight,
		Status:            p.Status.String(),
		Priority:          p.Priority.String(),
		DestinationCity:   p.DestinationCity,
		ClientID:          p.ClientID,
		RecipientID:       p.RecipientID,
		ZoneID:            p.ZoneID,
		CourierID:         p.CourierID,
		PlannedDeliveryAt: p.PlannedDeliveryAt,
		DeliveredAt:       p.DeliveredAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ParcelsFromEntities(parcels []entities.Parcel) []Parcel {
	res := make([]Parcel, len(parcels))
	for i, p := range parcels {
		res[i] = ParcelFromEntity(p)
	}
	return res
}

func HistoryFromEntities(history []entities.StatusHistoryEntry) []StatusHistoryEntry {
	res := make([]StatusHistoryEntry, len(history))
	for i, h := range history {
		res[i] = StatusHistoryEntry{
			ID:        h.ID,
			Status:    h.Status.String(),
			Comment:   h.Comment,
			ChangedAt: h.ChangedAt,
		}
	}
	return res
}

func ParcelDetailsFromEntity(d entities.ParcelDetails) ParcelDetails {
	items := make([]ParcelItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = ParcelItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return ParcelDetails{
		Parcel:     ParcelFromEntity(d.Parcel),
		Items:      items,
		History:    HistoryFromEntities(d.History),
		TotalPrice: d.TotalPrice(),
	}
}
