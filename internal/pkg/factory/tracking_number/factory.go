package tracking_number

import (
	"strings"

	"github.com/google/uuid"
)

const (
	prefix       = "COL-"
	randomLength = 8
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate возвращает "COL-" и 8 шестнадцатеричных символов в верхнем регистре.
// Уникальность проверяет вызывающая сторона.
func (g *Generator) Generate() string {
	id := uuid.New()
	return prefix + strings.ToUpper(id.String()[:randomLength])
}
