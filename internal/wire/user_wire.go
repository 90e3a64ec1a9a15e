package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
)

// wireUser configures user management routes. Every route needs a token;
// self-or-admin checks happen in the service.
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.With(auth).Route("/api/users", func(r chi.Router) {
		// ==================== ADMIN ROUTES ====================
		r.With(middleware.Admin(log)).Get("/", userHandler.List)
		r.With(middleware.Admin(log)).Post("/", userHandler.Create)

		// ==================== SELF OR ADMIN ====================
		r.Get("/{id}", userHandler.Get)
		r.Put("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)
	})
}
