package client

import "time"

type ClientDB struct {
	ID        int64
	LastName  string
	FirstName string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientModifyDB struct {
	ID        *int64
	LastName  *string
	FirstName *string
	Email     *string
	Phone     *string
	Address   *string
}
