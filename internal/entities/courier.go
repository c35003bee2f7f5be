package entities

import (
	"time"
)

type Courier struct {
	ID        int64
	LastName  string
	FirstName string
	Phone     string
	Vehicle   VehicleType
	ZoneID    int64
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type VehicleType string

const (
	VehicleCar       VehicleType = "car"
	VehicleVan       VehicleType = "van"
	VehicleMotorbike VehicleType = "motorbike"
)

func (t VehicleType) String() string {
	return string(t)
}

type CourierModify struct {
	ID        *int64
	LastName  *string
	FirstName *string
	Phone     *string
	Vehicle   *VehicleType
	ZoneID    *int64
	Active    *bool
}

type CourierFilter struct {
	ZoneID  *int64
	Active  *bool
	Vehicle *VehicleType
	Name    *string
	Phone   *string
}
