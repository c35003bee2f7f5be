package delivery_deadline

import (
	"time"

	"logistics/internal/entities"
)

const (
	normalDeliveryWindow     = 72 * time.Hour
	urgentDeliveryWindow     = 24 * time.Hour
	veryUrgentDeliveryWindow = 6 * time.Hour
)

type DeliveryTimeFactory struct{}

func New() *DeliveryTimeFactory {
	return &DeliveryTimeFactory{}
}

func (d *DeliveryTimeFactory) CalculateDeadline(priority entities.ParcelPriority, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch priority {
	case entities.PriorityVeryUrgent:
		resultTime = resultTime.Add(veryUrgentDeliveryWindow)
	case entities.PriorityUrgent:
		resultTime = resultTime.Add(urgentDeliveryWindow)
	case entities.PriorityNormal:
		resultTime = resultTime.Add(normalDeliveryWindow)
	default:
		resultTime = resultTime.Add(normalDeliveryWindow)
	}

	return resultTime
}
