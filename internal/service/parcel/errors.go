package parcel

import "errors"

var (
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidClientID       = errors.New("invalid client id")
	ErrInvalidRecipientID    = errors.New("invalid recipient id")
	ErrInvalidZoneID         = errors.New("invalid zone id")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrInvalidPriority       = errors.New("invalid parcel priority")
	ErrInvalidStatus         = errors.New("invalid parcel status")
	ErrInvalidQuantity       = errors.New("item quantity must be between 1 and 2147483647")
	ErrEmptyItems            = errors.New("parcel must contain at least one item")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")

	ErrParcelNotFound = errors.New("parcel not found")
	ErrConflict       = errors.New("parcel with this tracking number already exists")

	ErrTrackingNumberExhausted = errors.New("could not generate unique tracking number")
)
