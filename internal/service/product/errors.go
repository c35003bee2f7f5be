package product

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrInvalidName           = errors.New("invalid product name")
	ErrInvalidCategory       = errors.New("invalid product category")
	ErrInvalidWeight         = errors.New("product weight must be positive")
	ErrInvalidPrice          = errors.New("product price must be positive")
	ErrInvalidSort           = errors.New("invalid sort field")

	ErrProductNotFound = errors.New("product not found")
	ErrProductInUse    = errors.New("product is referenced by parcel items")
)
