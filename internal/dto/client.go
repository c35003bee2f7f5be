package dto

import (
	"time"

	"logistics/internal/entities"
)

type Client struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientModify struct {
	LastName  *string `json:"last_name"`
	FirstName *string `json:"first_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

func (m ClientModify) ToEntity(id *int64) entities.ClientModify {
	return entities.ClientModify{
		ID:        id,
		LastName:  m.LastName,
		FirstName: m.FirstName,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
	}
}

func ClientFromEntity(c entities.Client) Client {
	return Client{
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

func ClientsFromEntities(clients []entities.Client) []Client {
	res := make([]Client, len(clients))
	for i, c := range clients {
		res[i] = ClientFromEntity(c)
	}
	return res
}
