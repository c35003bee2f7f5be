package zone_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/response"
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
	var zoneDTO dto.ZoneModify
	if err := json.NewDecoder(r.Body).Decode(&zoneDTO); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	zoneEntity, err := h.service.CreateZone(r.Context(), zoneDTO.ToEntity(nil))
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, zone.ErrMissingRequiredFields),
			errors.Is(err, zone.ErrInvalidName),
			errors.Is(err, zone.ErrInvalidPostalCode),
			errors.Is(err, zone.ErrInvalidCity):
			status = http.StatusBadRequest
		case errors.Is(err, zone.ErrConflict):
			status = http.StatusConflict
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.ZoneFromEntity(*zoneEntity))
}
