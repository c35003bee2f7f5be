// Package dto описывает JSON тела REST API и их преобразование в доменные сущности.
package dto

type Error struct {
	Error string `json:"error"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

type PingResponse struct {
	Message  string `json:"message"`
	Database string `json:"database"`
}
