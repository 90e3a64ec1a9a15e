package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// SendEmail handles POST /api/send-email
func (h *ContactHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.SendContactEmail(r.Context(), &req); err != nil {
		respondError(w, h.log, err, "send email")
		return
	}

	utils.ResponseSuccess(w, "Email sent successfully", nil)
}
