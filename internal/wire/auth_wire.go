package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/utils"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.With(rateLimit(config, log)).Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})
}
