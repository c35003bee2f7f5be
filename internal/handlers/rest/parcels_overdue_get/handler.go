package parcels_overdue_get

import (
	"net/http"
	"time"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/response"
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
	parcels, err := h.service.GetOverdueParcels(r.Context(), time.Now().UTC())
	if err != nil {
		response.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ParcelsFromEntities(parcels))
}
