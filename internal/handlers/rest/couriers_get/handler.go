package couriers_get

import (
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/entities"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	couriers, err := h.service.GetCouriers(r.Context(), filter)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, courier.ErrInvalidVehicle),
			errors.Is(err, courier.ErrInvalidZoneID):
			status = http.StatusBadRequest
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.CouriersFromEntities(couriers))
}

func parseFilter(r *http.Request) (entities.CourierFilter, error) {
	zoneID, err := params.QueryInt64(r, "zone_id")
	if err != nil {
		return entities.CourierFilter{}, err
	}
	active, err := params.QueryBool(r, "active")
	if err != nil {
		return entities.CourierFilter{}, err
	}

	filter := entities.CourierFilter{
		ZoneID: zoneID,
		Active: active,
		Name:   params.QueryString(r, "name"),
		Phone:  params.QueryString(r, "phone"),
	}
	if vehicle := params.QueryString(r, "vehicle"); vehicle != nil {
		v := entities.VehicleType(*vehicle)
		filter.Vehicle = &v
	}
	return filter, nil
}
