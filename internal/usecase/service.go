package usecase

import (
	"go.uber.org/zap"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/token"
	"hotel-booking/pkg/utils"
)

// Dependencies are the collaborators shared by the services. Cache and
// Metrics may be nil.
type Dependencies struct {
	Tokens  token.Manager
	Cache   *cache.Cache
	Mailer  mailer.Mailer
	Metrics *metrics.Metrics
}

type Service struct {
	Auth    AuthService
	User    UserService
	Hotel   HotelService
	Booking BookingService
	Contact ContactService
}

func NewService(repo *repository.Repository, deps Dependencies, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, deps.Tokens, log),
		User:    NewUserService(repo.User, repo.Hotel, deps.Cache, log),
		Hotel:   NewHotelService(repo, deps.Cache, log),
		Booking: NewBookingService(repo, deps.Metrics, log),
		Contact: NewContactService(deps.Mailer, config.Email, deps.Metrics, log),
	}
}
