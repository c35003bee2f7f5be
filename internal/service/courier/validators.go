package courier

import (
	"strings"
	"unicode/utf8"

	"logistics/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidName(name string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	return length >= 2 && length <= 100
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if len(phone) < 2 || !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidVehicle(vehicle entities.VehicleType) bool {
	switch vehicle {
	case entities.VehicleCar, entities.VehicleVan, entities.VehicleMotorbike:
		return true
	default:
		return false
	}
}
