package parcel_courier_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/params"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/courier"
	"logistics/internal/service/parcel"
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

	var assignDTO dto.ParcelCourierAssign
	if err := json.NewDecoder(r.Body).Decode(&assignDTO); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	parcelEntity, err := h.service.AssignCourier(r.Context(), id, assignDTO.CourierID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID),
			errors.Is(err, parcel.ErrInvalidCourierID):
			status = http.StatusBadRequest
		case errors.Is(err, parcel.ErrParcelNotFound),
			errors.Is(err, courier.ErrCourierNotFound):
			status = http.StatusNotFound
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ParcelFromEntity(*parcelEntity))
}
