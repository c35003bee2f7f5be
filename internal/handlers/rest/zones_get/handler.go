package zones_get

import (
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/entities"
	"logistics/internal/handlers/rest/params"
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
	filter := entities.ZoneFilter{
		City:       params.QueryString(r, "city"),
		PostalCode: params.QueryString(r, "postal_code"),
		Name:       params.QueryString(r, "name"),
	}

	zones, err := h.service.GetZones(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ZonesFromEntities(zones))
}
