package recipient

import "logistics/internal/entities"

func ToDomain(r *RecipientDB) *entities.Recipient {
	if r == nil {
		return nil
	}
	return &entities.Recipient{
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

func FromDomainModify(r *entities.RecipientModify) *RecipientModifyDB {
	if r == nil {
		return nil
	}
	return &RecipientModifyDB{
		ID:        r.ID,
		LastName:  r.LastName,
		FirstName: r.FirstName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

func ToDomainList(recipientsDB []RecipientDB) []entities.Recipient {
	if len(recipientsDB) == 0 {
		return []entities.Recipient{}
	}

	result := make([]entities.Recipient, len(recipientsDB))
	for i := range recipientsDB {
		result[i] = *ToDomain(&recipientsDB[i])
	}
	return result
}
