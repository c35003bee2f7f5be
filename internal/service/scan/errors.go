package scan

import "errors"

var (
	ErrUndefinedEventType = errors.New("undefined scan event type")
	ErrInvalidEvent       = errors.New("invalid scan event")
)
