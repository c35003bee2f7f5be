package product_delete

import (
	"errors"
	"net/http"

	"logistics/internal/handlers/rest/params"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/product"
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

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, product.ErrInvalidProductID):
			status = http.StatusBadRequest
		case errors.Is(err, product.ErrProductNotFound):
			status = http.StatusNotFound
		case errors.Is(err, product.ErrProductInUse):
			status = http.StatusConflict
		}
		response.Error(w, h.log, status, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
