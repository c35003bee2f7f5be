package courier_activation_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/params"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/courier"
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

var errActiveRequired = errors.New("field active is required")

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathInt64(r, "id")
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	var activationDTO dto.CourierActivation
	if err := json.NewDecoder(r.Body).Decode(&activationDTO); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}
	if activationDTO.Active == nil {
		response.Error(w, h.log, http.StatusBadRequest, errActiveRequired)
		return
	}

	courierEntity, err := h.service.SetCourierActive(r.Context(), id, *activationDTO.Active)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID):
			status = http.StatusBadRequest
		case errors.Is(err, courier.ErrCourierNotFound):
			status = http.StatusNotFound
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.CourierFromEntity(*courierEntity))
}
