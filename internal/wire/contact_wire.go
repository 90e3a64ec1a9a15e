package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/utils"
)

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(rateLimit(config, log)).Post("/api/send-email", contactHandler.SendEmail)
}
