package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from the repositories and
// shared collaborators.
func Wiring(repo *repository.Repository, deps usecase.Dependencies, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, deps, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, deps, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	deps usecase.Dependencies,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger, deps.Metrics))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	auth := middleware.Authenticate(deps.Tokens, logger)

	wireAuth(r, handler.Auth, config, logger)
	wireUser(r, handler.User, auth, logger)
	wireHotel(r, handler.Hotel, auth, logger)
	wireBooking(r, handler.Booking, auth, logger)
	wireContact(r, handler.Contact, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})
	r.Handle("/metrics", deps.Metrics.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, false, "Method not allowed", nil, nil)
	})

	return r
}

// rateLimit returns a per-IP limiter, or a pass-through when limiting is
// switched off (RATE_LIMIT_RPS <= 0).
func rateLimit(config *utils.Config, log *zap.Logger) func(http.Handler) http.Handler {
	if config.RateLimit.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.NewRateLimiter(
		config.RateLimit.RPS,
		config.RateLimit.Burst,
		config.RateLimit.TrustedProxies,
		log,
	).Middleware
}
