package entities

import "time"

type Recipient struct {
	ID        int64
	LastName  string
	FirstName string
	Email     *string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RecipientModify struct {
	ID        *int64
	LastName  *string
	FirstName *string
	Email     *string
	Phone     *string
	Address   *string
}

type RecipientFilter struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}
