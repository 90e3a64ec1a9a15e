package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hotel-booking/internal/authz"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/utils"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Hotel   *HotelHandler
	Booking *BookingHandler
	Contact *ContactHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Hotel:   NewHotelHandler(service.Hotel, log),
		Booking: NewBookingHandler(service.Booking, log),
		Contact: NewContactHandler(service.Contact, log),
	}
}

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON body into dst and answers 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// identity returns the caller set by the auth middleware, answering 401 when
// the route was wired without it.
func identity(w http.ResponseWriter, r *http.Request) (authz.Identity, bool) {
	id, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
	}
	return id, ok
}

// respondError maps a service error onto the response envelope. Anything
// that is not an *apperror.Error is treated as internal.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal("internal server error", err)
	}

	if appErr.Kind == apperror.KindInternal {
		log.Error(operation+" failed", zap.Error(err))
	} else {
		log.Warn(operation+" failed",
			zap.String("kind", appErr.Kind.String()),
			zap.String("message", appErr.Message))
	}

	utils.ResponseError(w, appErr)
}
