package zone

import (
	"strings"
	"unicode/utf8"
)

func isValidID(id int64) bool {
	return id > 0
}

func lengthBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= minLen && n <= maxLen
}

func isValidName(name string) bool {
	return lengthBetween(name, 2, 100)
}

func isValidPostalCode(code string) bool {
	return lengthBetween(code, 4, 10)
}

func isValidCity(city string) bool {
	return lengthBetween(city, 2, 100)
}
