// Package response пишет JSON ответы REST обработчиков.
package response

import (
	"encoding/json"
	"net/http"

	"logistics/internal/dto"
	"logistics/pkg/logger"
)

const internalErrorMessage = "internal server error"

func JSON(w http.ResponseWriter, log logger.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error отдает текст ошибки клиенту только для 4xx. Детали 5xx уходят в лог.
func Error(w http.ResponseWriter, log logger.Logger, status int, err error) {
	message := internalErrorMessage
	if status < http.StatusInternalServerError {
		message = err.Error()
	} else {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
	}
	JSON(w, log, status, dto.Error{Error: message})
}
