package zone

import "time"

type ZoneDB struct {
	ID         int64
	Name       string
	PostalCode string
	City       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ZoneModifyDB struct {
	ID         *int64
	Name       *string
	PostalCode *string
	City       *string
}
