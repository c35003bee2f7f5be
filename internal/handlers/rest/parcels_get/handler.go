package parcels_get

import (
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/entities"
	"logistics/internal/handlers/rest/params"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/client"
	"logistics/internal/service/courier"
	"logistics/internal/service/parcel"
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
	filter, err := parseFilter(r)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	parcels, err := h.service.GetParcels(r.Context(), filter)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, parcel.ErrInvalidStatus),
			errors.Is(err, parcel.ErrInvalidPriority),
			errors.Is(err, parcel.ErrInvalidClientID),
			errors.Is(err, parcel.ErrInvalidCourierID),
			errors.Is(err, parcel.ErrInvalidZoneID):
			status = http.StatusBadRequest
		case errors.Is(err, client.ErrClientNotFound),
			errors.Is(err, courier.ErrCourierNotFound),
			errors.Is(err, zone.ErrZoneNotFound):
			status = http.StatusNotFound
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ParcelsFromEntities(parcels))
}

func parseFilter(r *http.Request) (entities.ParcelFilter, error) {
	clientID, err := params.QueryInt64(r, "client_id")
	if err != nil {
		return entities.ParcelFilter{}, err
	}
	courierID, err := params.QueryInt64(r, "courier_id")
	if err != nil {
		return entities.ParcelFilter{}, err
	}
	zoneID, err := params.QueryInt64(r, "zone_id")
	if err != nil {
		return entities.ParcelFilter{}, err
	}

	filter := entities.ParcelFilter{
		ClientID:  clientID,
		CourierID: courierID,
		ZoneID:    zoneID,
	}
	if status := params.QueryString(r, "status"); status != nil {
		s := entities.ParcelStatus(*status)
		filter.Status = &s
	}
	if priority := params.QueryString(r, "priority"); priority != nil {
		p := entities.ParcelPriority(*priority)
		filter.Priority = &p
	}
	return filter, nil
}
