package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/courier"
	"logistics/internal/service/zone"
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
	var courierDTO dto.CourierModify
	if err := json.NewDecoder(r.Body).Decode(&courierDTO); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	courierEntity, err := h.service.CreateCourier(r.Context(), courierDTO.ToEntity(nil))
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidVehicle),
			errors.Is(err, courier.ErrInvalidZoneID):
			status = http.StatusBadRequest
		case errors.Is(err, zone.ErrZoneNotFound):
			status = http.StatusNotFound
		case errors.Is(err, courier.ErrConflict):
			status = http.StatusConflict
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.CourierFromEntity(*courierEntity))
}
