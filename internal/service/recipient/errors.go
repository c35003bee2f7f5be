package recipient

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRecipientID    = errors.New("invalid recipient id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidAddress        = errors.New("invalid address")

	ErrRecipientNotFound = errors.New("recipient not found")
	ErrRecipientInUse    = errors.New("recipient is referenced by parcels")
)
