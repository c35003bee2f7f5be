package entities

import "time"

// Client - отправитель посылок.
type Client struct {
	ID        int64
	LastName  string
	FirstName string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientModify struct {
	ID        *int64
	LastName  *string
	FirstName *string
	Email     *string
	Phone     *string
	Address   *string
}

type ClientFilter struct {
	Name  *string
	Email *string
	Phone *string
}
