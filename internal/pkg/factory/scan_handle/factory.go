package scan_handle

import (
	"context"
	"fmt"

	"logistics/internal/entities"
	"logistics/internal/service/scan"
)

type EventHandlerFactory struct {
	parcelService scan.ParcelService
}

func NewEventHandlerFactory(parcelService scan.ParcelService) *EventHandlerFactory {
	return &EventHandlerFactory{
		parcelService: parcelService,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType entities.ScanEventType) (scan.ExecuteFn, error) {
	switch eventType {
	case entities.ScanStatusChanged:
		return f.statusChangedHandler, nil
	case entities.ScanCourierAssigned:
		return f.courierAssignedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", scan.ErrUndefinedEventType, eventType)
	}
}

func (f *EventHandlerFactory) statusChangedHandler(ctx context.Context, parcelID int64, event entities.ScanEvent) (*entities.Parcel, error) {
	if event.Status == nil {
		return nil, fmt.Errorf("status is required for %s: %w", event.Type, scan.ErrInvalidEvent)
	}

	var comment string
	if event.Comment != nil {
		comment = *event.Comment
	}

	parcel, err := f.parcelService.ChangeStatus(ctx, parcelID, *event.Status, comment)
	if err != nil {
		return nil, fmt.Errorf("change status of parcel %s: %w", event.TrackingNumber, err)
	}
	return parcel, nil
}

func (f *EventHandlerFactory) courierAssignedHandler(ctx context.Context, parcelID int64, event entities.ScanEvent) (*entities.Parcel, error) {
	if event.CourierID == nil {
		return nil, fmt.Errorf("courier id is required for %s: %w", event.Type, scan.ErrInvalidEvent)
	}

	parcel, err := f.parcelService.AssignCourier(ctx, parcelID, *event.CourierID)
	if err != nil {
		return nil, fmt.Errorf("assign courier to parcel %s: %w", event.TrackingNumber, err)
	}
	return parcel, nil
}
