package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"logistics/internal/entities"
)

// Вес и цена сериализуются строкой, чтобы не терять точность на клиенте.
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  *string         `json:"category,omitempty"`
	Weight    decimal.Decimal `json:"weight"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ProductModify struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Weight   *decimal.Decimal `json:"weight"`
	Price    *decimal.Decimal `json:"price"`
}

func (m ProductModify) ToEntity(id *int64) entities.ProductModify {
	return entities.ProductModify{
		ID:       id,
		Name:     m.Name,
		Category: m.Category,
		Weight:   m.Weight,
		Price:    m.Price,
	}
}

func ProductFromEntity(p entities.Product) Product {
	return Product{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Weight:    p.Weight,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ProductsFromEntities(products []entities.Product) []Product {
	res := make([]Product, len(products))
	for i, p := range products {
		res[i] = ProductFromEntity(p)
	}
	return res
}
