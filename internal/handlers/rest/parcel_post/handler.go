package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/client"
	"logistics/internal/service/parcel"
	"logistics/internal/service/product"
	"logistics/internal/service/recipient"
	"logistics/internal/service/zone"
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
	var parcelDTO dto.ParcelCreate
	if err := json.NewDecoder(r.Body).Decode(&parcelDTO); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	details, err := h.service.CreateParcel(r.Context(), parcelDTO.ToEntity())
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, parcel.ErrInvalidClientID),
			errors.Is(err, parcel.ErrInvalidRecipientID),
			errors.Is(err, parcel.ErrInvalidZoneID),
			errors.Is(err, parcel.ErrInvalidProductID),
			errors.Is(err, parcel.ErrInvalidPriority),
			errors.Is(err, parcel.ErrInvalidQuantity),
			errors.Is(err, parcel.ErrEmptyItems):
			status = http.StatusBadRequest
		case errors.Is(err, client.ErrClientNotFound),
			errors.Is(err, recipient.ErrRecipientNotFound),
			errors.Is(err, zone.ErrZoneNotFound),
			errors.Is(err, product.ErrProductNotFound):
			status = http.StatusNotFound
		case errors.Is(err, parcel.ErrConflict):
			status = http.StatusConflict
		}
		response.Error(w, h.log, status, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.ParcelDetailsFromEntity(*details))
}
