package status_events

import (
	"time"

	"logistics/internal/entities"
)

type statusChangedMessage struct {
	ParcelID       int64     `json:"parcel_id"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	Comment        string    `json:"comment,omitempty"`
	CourierID      *int64    `json:"courier_id,omitempty"`
	ChangedAt      time.Time `json:"changed_at"`
}

func fromDomain(event entities.ParcelStatusChanged) statusChangedMessage {
	return statusChangedMessage{
		ParcelID:       event.ParcelID,
		TrackingNumber: event.TrackingNumber,
		Status:         event.Status.String(),
		Comment:        event.Comment,
		CourierID:      event.CourierID,
		ChangedAt:      event.ChangedAt.UTC(),
	}
}
