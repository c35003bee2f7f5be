package parcel

import (
	"math"
	"strings"

	"logistics/internal/entities"
)

const maxTrackingNumberLength = 32

func isValidID(id int64) bool {
	return id > 0
}

func isValidTrackingNumber(trackingNumber string) bool {
	trackingNumber = strings.TrimSpace(trackingNumber)
	return trackingNumber != "" && len(trackingNumber) <= maxTrackingNumberLength
}

func validateCreate(parcelCreate entities.ParcelCreate) error {
	if !isValidID(parcelCreate.ClientID) {
		return ErrInvalidClientID
	}
	if !isValidID(parcelCreate.RecipientID) {
		return ErrInvalidRecipientID
	}
	if !isValidID(parcelCreate.ZoneID) {
		return ErrInvalidZoneID
	}
	if !parcelCreate.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if len(parcelCreate.Items) == 0 {
		return ErrEmptyItems
	}
	for _, item := range parcelCreate.Items {
		if !isValidID(item.ProductID) {
			return ErrInvalidProductID
		}
		// parcel_items.quantity - INTEGER
		if item.Quantity < 1 || item.Quantity > math.MaxInt32 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

func validateFilter(filter entities.ParcelFilter) error {
	if filter.Status != nil && !filter.Status.IsValid() {
		return ErrInvalidStatus
	}
	if filter.Priority != nil && !filter.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if filter.ClientID != nil && !isValidID(*filter.ClientID) {
		return ErrInvalidClientID
	}
	if filter.CourierID != nil && !isValidID(*filter.CourierID) {
		return ErrInvalidCourierID
	}
	if filter.ZoneID != nil && !isValidID(*filter.ZoneID) {
		return ErrInvalidZoneID
	}
	return nil
}
