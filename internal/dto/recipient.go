package dto

import (
	"time"

	"logistics/internal/entities"
)

type Recipient struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Email     *string   `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RecipientModify struct {
	LastName  *string `json:"last_name"`
	FirstName *string `json:"first_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

func (m RecipientModify) ToEntity(id *int64) entities.RecipientModify {
	return entities.RecipientModify{
		ID:        id,
		LastName:  m.LastName,
		FirstName: m.FirstName,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
	}
}

func RecipientFromEntity(r entities.Recipient) Recipient {
	return Recipient{
		ID:        r.ID,
		LastName:  r.LastName,
		FirstName: r.FirstName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func RecipientsFromEntities(recipients []entities.Recipient) []Recipient {
	res := make([]Recipient, len(recipients))
	for i, r := range recipients {
		res[i] = RecipientFromEntity(r)
	}
	return res
}
