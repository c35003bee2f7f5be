package dto

import (
	"time"

	"logistics/internal/entities"
)

type Courier struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Phone     string    `json:"phone"`
	Vehicle   string    `json:"vehicle"`
	ZoneID    int64     `json:"zone_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CourierModify struct {
	LastName  *string `json:"last_name"`
	FirstName *string `json:"first_name"`
	Phone     *string `json:"phone"`
	Vehicle   *string `json:"vehicle"`
	ZoneID    *int64  `json:"zone_id"`
}

type CourierActivation struct {
	Active *bool `json:"active"`
}

type ActiveCouriersCount struct {
	ZoneID int64 `json:"zone_id"`
	Count  int64 `json:"count"`
}

func (m CourierModify) ToEntity(id *int64) entities.CourierModify {
	var vehicle *entities.VehicleType
	if m.Vehicle != nil {
		v := entities.VehicleType(*m.Vehicle)
		vehicle = &v
	}

	return entities.CourierModify{
		ID:        id,
		LastName:  m.LastName,
		FirstName: m.FirstName,
		Phone:     m.Phone,
		Vehicle:   vehicle,
		ZoneID:    m.ZoneID,
	}
}

func CourierFromEntity(c entities.Courier) Courier {
	return Courier{
		ID:        c.ID,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Phone:     c.Phone,
		Vehicle:   c.Vehicle.String(),
		ZoneID:    c.ZoneID,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func CouriersFromEntities(couriers []entities.Courier) []Courier {
	res := make([]Courier, len(couriers))
	for i, c := range couriers {
		res[i] = CourierFromEntity(c)
	}
	return res
}
