package parcel_tracking_get

import (
	"errors"
	"net/http"

	"logistics/internal/dto"
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

// ServeHTTP отдает посылку по трек-номеру вместе с позициями и историей.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	trackingNumber := params.PathString(r, "tracking_number")

	details, err := h.service.GetParcelByTrackingNumber(r.Context(), trackingNumber)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, parcel.ErrInvalidTrackingNumber):
			status = http.StatusBadRequest
		case errors.Is(err, parcel.ErrParcelNotFound):
			status = http.StatusNotFound
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ParcelDetailsFromEntity(*details))
}
