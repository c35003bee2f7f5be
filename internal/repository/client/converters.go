package client

import "logistics/internal/entities"

func ToDomain(c *ClientDB) *entities.Client {
	if c == nil {
		return nil
	}
	return &entities.Client{
		ID:        c.ID,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDomainModify(c *entities.ClientModify) *ClientModifyDB {
	if c == nil {
		return nil
	}
	return &ClientModifyDB{
		ID:        c.ID,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}

func ToDomainList(clientsDB []ClientDB) []entities.Client {
	if len(clientsDB) == 0 {
		return []entities.Client{}
	}

	result := make([]entities.Client, len(clientsDB))
	for i := range clientsDB {
		result[i] = *ToDomain(&clientsDB[i])
	}
	return result
}
