package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64
	Name      string
	Category  *string
	Weight    decimal.Decimal
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductModify struct {
	ID       *int64
	Name     *string
	Category *string
	Weight   *decimal.Decimal
	Price    *decimal.Decimal
}

type ProductSort string

const (
	ProductSortID    ProductSort = "id"
	ProductSortPrice ProductSort = "price"
)

type ProductFilter struct {
	Category *string
	Name     *string
	SortBy   ProductSort
}
