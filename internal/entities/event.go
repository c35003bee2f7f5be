package entities

import "time"

type ScanEventType string

const (
	ScanStatusChanged   ScanEventType = "status_changed"
	ScanCourierAssigned ScanEventType = "courier_assigned"
)

func (t ScanEventType) String() string {
	return string(t)
}

// ScanEvent приходит из Kafka от сканеров на складах и у курьеров.
type ScanEvent struct {
	TrackingNumber string
	Type           ScanEventType
	Status         *ParcelStatus
	Comment        *string
	CourierID      *int64
}

// ParcelStatusChanged публикуется после каждого изменения статуса.
type ParcelStatusChanged struct {
	ParcelID       int64
	TrackingNumber string
	Status         ParcelStatus
	Comment        string
	CourierID      *int64
	ChangedAt      time.Time
}
