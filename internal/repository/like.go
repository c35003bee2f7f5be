package repository

import "strings"

// экранирование для LIKE/ILIKE, escape-символ postgres по умолчанию - обратный слэш
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike экранирует %, _ и \ в пользовательском вводе.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern строит шаблон поиска подстроки.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
