package client_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/dto"
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
	var clientDTO dto.ClientModify
	if err := json.NewDecoder(r.Body).Decode(&clientDTO); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	clientEntity, err := h.service.CreateClient(r.Context(), clientDTO.ToEntity(nil))
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, client.ErrMissingRequiredFields),
			errors.Is(err, client.ErrInvalidName),
			errors.Is(err, client.ErrInvalidEmail),
			errors.Is(err, client.ErrInvalidPhone),
			errors.Is(err, client.ErrInvalidAddress):
			status = http.StatusBadRequest
		case errors.Is(err, client.ErrConflict):
			status = http.StatusConflict
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.ClientFromEntity(*clientEntity))
}
