package client

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidClientID       = errors.New("invalid client id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidAddress        = errors.New("invalid address")

	ErrClientNotFound = errors.New("client not found")
	ErrConflict       = errors.New("client with this email already exists")
	ErrClientInUse    = errors.New("client is referenced by parcels")
)
