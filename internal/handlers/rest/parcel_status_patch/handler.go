package parcel_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/entities"
	"logistics/internal/handlers/rest/params"
	"logistics/internal/handlers/rest/response"
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

	var statusDTO dto.ParcelStatusChange
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	parcelEntity, err := h.service.ChangeStatus(r.Context(), id, entities.ParcelStatus(statusDTO.Status), statusDTO.Comment)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID):
			status = http.StatusBadRequest
		case errors.Is(err, parcel.ErrParcelNotFound):
			status = http.StatusNotFound
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ParcelFromEntity(*parcelEntity))
}
