package product

import "logistics/internal/entities"

func ToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}
	return &entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Weight:    p.Weight,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromDomainModify(p *entities.ProductModify) *ProductModifyDB {
	if p == nil {
		return nil
	}
	return &ProductModifyDB{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Weight:   p.Weight,
		Price:    p.Price,
	}
}

func ToDomainList(productsDB []ProductDB) []entities.Product {
	if len(productsDB) == 0 {
		return []entities.Product{}
	}

	result := make([]entities.Product, len(productsDB))
	for i := range productsDB {
		result[i] = *ToDomain(&productsDB[i])
	}
	return result
}
