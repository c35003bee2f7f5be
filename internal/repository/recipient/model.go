package recipient

import "time"

type RecipientDB struct {
	ID        int64
	LastName  string
	FirstName string
	Email     *string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RecipientModifyDB struct {
	ID        *int64
	LastName  *string
	FirstName *string
	Email     *string
	Phone     *string
	Address   *string
}
