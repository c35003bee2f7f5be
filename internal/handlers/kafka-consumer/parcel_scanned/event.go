package parcel_scanned

import "logistics/internal/entities"

// scanEvent - формат сообщения в топике сканов.
type scanEvent struct {
	TrackingNumber string  `json:"tracking_number"`
	Type           string  `json:"type"`
	Status         *string `json:"status,omitempty"`
	Comment        *string `json:"comment,omitempty"`
	CourierID      *int64  `json:"courier_id,omitempty"`
}

func (e scanEvent) toEntity() entities.ScanEvent {
	event := entities.ScanEvent{
		TrackingNumber: e.TrackingNumber,
		Type:           entities.ScanEventType(e.Type),
		Comment:        e.Comment,
		CourierID:      e.CourierID,
	}
	if e.Status != nil {
		status := entities.ParcelStatus(*e.Status)
		event.Status = &status
	}
	return event
}
