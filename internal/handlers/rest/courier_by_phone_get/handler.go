package courier_by_phone_get

import (
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	phone := params.PathString(r, "phone")

	courierEntity, err := h.service.GetCourierByPhone(r.Context(), phone)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			status = http.StatusNotFound
		case errors.Is(err, courier.ErrInvalidPhone):
			status = http.StatusBadRequest
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.CourierFromEntity(*courierEntity))
}
