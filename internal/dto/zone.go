package dto

import (
	"time"

	"logistics/internal/entities"
)

type Zone struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	PostalCode string    `json:"postal_code"`
	City       string    `json:"city"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ZoneModify используется и для создания, и для частичного обновления.
type ZoneModify struct {
	Name       *string `json:"name"`
	PostalCode *string `json:"postal_code"`
	City       *string `json:"city"`
}

func (m ZoneModify) ToEntity(id *int64) entities.ZoneModify {
	return entities.ZoneModify{
		ID:         id,
		Name:       m.Name,
		PostalCode: m.PostalCode,
		City:       m.City,
	}
}

func ZoneFromEntity(z entities.Zone) Zone {
	return Zone{
		ID:         z.ID,
		Name:       z.Name,
		PostalCode: z.PostalCode,
		City:       z.City,
		CreatedAt:  z.CreatedAt,
		UpdatedAt:  z.UpdatedAt,
	}
}

func ZonesFromEntities(zones []entities.Zone) []Zone {
	res := make([]Zone, len(zones))
	for i, z := range zones {
		res[i] = ZoneFromEntity(z)
	}
	return res
}
