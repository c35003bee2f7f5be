package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidVehicle        = errors.New("invalid vehicle type")
	ErrInvalidZoneID         = errors.New("invalid zone id")

	ErrCourierNotFound = errors.New("courier not found")
	ErrConflict        = errors.New("courier with this phone already exists")
)
