package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/middleware"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	ownerOrAdmin := middleware.RequireRoles(log, entity.RoleAdmin, entity.RoleHotelOwner)

	r.Route("/api/hotels", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", hotelHandler.List)

		// ==================== PROTECTED ROUTES ====================
		// my-hotels is registered before /{id} so it is not taken for an id
		r.With(auth, ownerOrAdmin).Get("/my-hotels", hotelHandler.MyHotels)
		r.With(auth, ownerOrAdmin).Post("/", hotelHandler.Create)

		r.Get("/{id}", hotelHandler.Get)
		// ownership is checked in the service
		r.With(auth).Put("/{id}", hotelHandler.Update)
		r.With(auth).Delete("/{id}", hotelHandler.Delete)
	})
}
