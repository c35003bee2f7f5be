package courier_count_get

import (
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/params"
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
	zoneID, err := params.PathInt64(r, "id")
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	count, err := h.service.CountActiveCouriersByZone(r.Context(), zoneID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, courier.ErrInvalidZoneID):
			status = http.StatusBadRequest
		case errors.Is(err, zone.ErrZoneNotFound):
			status = http.StatusNotFound
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ActiveCouriersCount{
		ZoneID: zoneID,
		Count:  count,
	})
}
