package courier

import "time"

type CourierDB struct {
	ID        int64
	LastName  string
	FirstName string
	Phone     string
	Vehicle   string
	ZoneID    int64
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourierModifyDB struct {
	ID        *int64
	LastName  *string
	FirstName *string
	Phone     *string
	Vehicle   *string
	ZoneID    *int64
	Active    *bool
}
