package product_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/dto"
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

	var productDTO dto.ProductModify
	if err := json.NewDecoder(r.Body).Decode(&productDTO); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	productEntity, err := h.service.UpdateProduct(r.Context(), productDTO.ToEntity(&id))
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, product.ErrMissingRequiredFields),
			errors.Is(err, product.ErrInvalidName),
			errors.Is(err, product.ErrInvalidCategory),
			errors.Is(err, product.ErrInvalidWeight),
			errors.Is(err, product.ErrInvalidPrice),
			errors.Is(err, product.ErrInvalidProductID):
			status = http.StatusBadRequest
		case errors.Is(err, product.ErrProductNotFound):
			status = http.StatusNotFound
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ProductFromEntity(*productEntity))
}
