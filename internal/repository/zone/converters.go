package zone

import "logistics/internal/entities"

func ToDomain(z *ZoneDB) *entities.Zone {
	if z == nil {
		return nil
	}
	return &entities.Zone{
		ID:         z.ID,
		Name:       z.Name,
		PostalCode: z.PostalCode,
		City:       z.City,
		CreatedAt:  z.CreatedAt,
		UpdatedAt:  z.UpdatedAt,
	}
}

func FromDomainModify(z *entities.ZoneModify) *ZoneModifyDB {
	if z == nil {
		return nil
	}
	return &ZoneModifyDB{
		ID:         z.ID,
		Name:       z.Name,
		PostalCode: z.PostalCode,
		City:       z.City,
	}
}

func ToDomainList(zonesDB []ZoneDB) []entities.Zone {
	if len(zonesDB) == 0 {
		return []entities.Zone{}
	}

	result := make([]entities.Zone, len(zonesDB))
	for i := range zonesDB {
		result[i] = *ToDomain(&zonesDB[i])
	}
	return result
}
