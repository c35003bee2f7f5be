package clients_get

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
	filter := entities.ClientFilter{
		Name:  params.QueryString(r, "name"),
		Email: params.QueryString(r, "email"),
		Phone: params.QueryString(r, "phone"),
	}

	clients, err := h.service.GetClients(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ClientsFromEntities(clients))
}
