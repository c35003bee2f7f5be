package ping_get

import (
	"context"
	"net/http"
	"time"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/pkg/logger"
)

const (
	databaseUp   = "up"
	databaseDown = "down"

	pingTimeout = time.Second
)

type Handler struct {
	log    handlerLogger
	pinger Pinger
}

func New(log handlerLogger, pinger Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:    handlerLog,
		pinger: pinger,
	}
}

// ServeHTTP отвечает pong и состоянием базы. Если база недоступна, статус 503.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	res := dto.PingResponse{
		Message:  "pong",
		Database: databaseUp,
	}
	status := http.StatusOK

	if err := h.pinger.Ping(ctx); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("database ping failed")

		res.Database = databaseDown
		status = http.StatusServiceUnavailable
	}

	response.JSON(w, h.log, status, res)
}
