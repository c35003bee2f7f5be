package entities

import "time"

type Zone struct {
	ID         int64
	Name       string
	PostalCode string
	City       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ZoneModify struct {
	ID         *int64
	Name       *string
	PostalCode *string
	City       *string
}

type ZoneFilter struct {
	Name       *string
	PostalCode *string
	City       *string
}
