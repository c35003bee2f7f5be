package zone

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidZoneID         = errors.New("invalid zone id")
	ErrInvalidName           = errors.New("invalid zone name")
	ErrInvalidPostalCode     = errors.New("invalid postal code")
	ErrInvalidCity           = errors.New("invalid city")

	ErrZoneNotFound = errors.New("zone not found")
	ErrConflict     = errors.New("zone with this name already exists")
	ErrZoneInUse    = errors.New("zone is referenced by couriers or parcels")
)
