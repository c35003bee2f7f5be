package client_get

import (
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/params"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/client"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathInt64(r, "id")
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	clientEntity, err := h.service.GetClient(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, client.ErrInvalidClientID):
			status = http.StatusBadRequest
		case errors.Is(err, client.ErrClientNotFound):
			status = http.StatusNotFound
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ClientFromEntity(*clientEntity))
}
