package product

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidName(name string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	return length >= 1 && length <= 200
}

func isValidCategory(category string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(category))
	return length >= 1 && length <= 100
}

func isPositive(value decimal.Decimal) bool {
	return value.IsPositive()
}
