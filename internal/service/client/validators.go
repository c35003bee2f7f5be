package client

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

func isValidID(id int64) bool {
	return id > 0
}

func lengthBetween(value string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(value))
	return length >= min && length <= max
}

func isValidName(name string) bool {
	return lengthBetween(name, 2, 100)
}

// isValidEmail принимает только голый адрес, без отображаемого имени.
func isValidEmail(email string) bool {
	if !lengthBetween(email, 3, 150) {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func isValidPhone(phone string) bool {
	return lengthBetween(phone, 10, 20)
}

func isValidAddress(address string) bool {
	return lengthBetween(address, 1, 255)
}
