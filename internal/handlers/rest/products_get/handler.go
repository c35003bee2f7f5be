package products_get

import (
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/entities"
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
	filter := entities.ProductFilter{
		Category: params.QueryString(r, "category"),
		Name:     params.QueryString(r, "name"),
	}
	if sort := params.QueryString(r, "sort"); sort != nil {
		filter.SortBy = entities.ProductSort(*sort)
	}

	products, err := h.service.GetProducts(r.Context(), filter)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, product.ErrInvalidSort):
			status = http.StatusBadRequest
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ProductsFromEntities(products))
}
