package courier

import (
	"logistics/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:        c.ID,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Phone:     c.Phone,
		Vehicle:   entities.VehicleType(c.Vehicle),
		ZoneID:    c.ZoneID,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}

	courierDB := &CourierModifyDB{
		ID:        courierModify.ID,
		LastName:  courierModify.LastName,
		FirstName: courierModify.FirstName,
		Phone:     courierModify.Phone,
		ZoneID:    courierModify.ZoneID,
		Active:    courierModify.Active,
	}

	if courierModify.Vehicle != nil {
		vehicle := courierModify.Vehicle.String()
		courierDB.Vehicle = &vehicle
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i := range couriersDB {
		result[i] = *ToDomain(&couriersDB[i])
	}
	return result
}
