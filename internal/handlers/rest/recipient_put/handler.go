package recipient_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/params"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/recipient"
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

	var recipientDTO dto.RecipientModify
	if err := json.NewDecoder(r.Body).Decode(&recipientDTO); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	recipientEntity, err := h.service.UpdateRecipient(r.Context(), recipientDTO.ToEntity(&id))
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, recipient.ErrMissingRequiredFields),
			errors.Is(err, recipient.ErrInvalidName),
			errors.Is(err, recipient.ErrInvalidEmail),
			errors.Is(err, recipient.ErrInvalidPhone),
			errors.Is(err, recipient.ErrInvalidAddress),
			errors.Is(err, recipient.ErrInvalidRecipientID):
			status = http.StatusBadRequest
		case errors.Is(err, recipient.ErrRecipientNotFound):
			status = http.StatusNotFound
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.RecipientFromEntity(*recipientEntity))
}
