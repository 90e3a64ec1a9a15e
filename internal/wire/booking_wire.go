package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.With(auth).Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.Create)
		r.Get("/my-bookings", bookingHandler.MyBookings)

		// ==================== ADMIN ROUTES ====================
		r.With(middleware.Admin(log)).Get("/all-bookings", bookingHandler.AllBookings)
		r.With(middleware.Admin(log)).Get("/all-bookings/export", bookingHandler.Export)

		// owner/guest/admin checks happen in the service
		r.Get("/hotel/{hotelId}", bookingHandler.HotelBookings)
		r.Put("/{id}/cancel", bookingHandler.Cancel)
	})
}
