package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductDB struct {
	ID        int64
	Name      string
	Category  *string
	Weight    decimal.Decimal
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductModifyDB struct {
	ID       *int64
	Name     *string
	Category *string
	Weight   *decimal.Decimal
	Price    *decimal.Decimal
}
