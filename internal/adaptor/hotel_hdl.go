package adaptor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// List handles GET /api/hotels
func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "Hotels retrieved successfully", hotels)
}

// Get handles GET /api/hotels/{id}
func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel retrieved successfully", hotel)
}

// MyHotels handles GET /api/hotels/my-hotels
func (h *HotelHandler) MyHotels(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	hotels, err := h.service.MyHotels(r.Context(), caller)
	if err != nil {
		respondError(w, h.log, err, "my hotels")
		return
	}

	utils.ResponseSuccess(w, "Hotels retrieved successfully", hotels)
}

// Create handles POST /api/hotels
func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.CreateHotelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	hotel, err := h.service.Create(r.Context(), caller, &req)
	if err != nil {
		respondError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "Hotel created successfully", hotel)
}

// Update handles PUT /api/hotels/{id}
func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.UpdateHotelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	hotel, err := h.service.Update(r.Context(), caller, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "update hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel updated successfully", hotel)
}

// Delete handles DELETE /api/hotels/{id}
func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "delete hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel deleted", nil)
}
