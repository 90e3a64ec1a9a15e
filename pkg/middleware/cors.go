package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the configured origins. A "*" entry allows any origin while
// still echoing it back, so credentials keep working.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	for _, o := range allowedOrigins {
		if o == "*" {
			opts.AllowOriginFunc = func(*http.Request, string) bool { return true }
			return cors.Handler(opts)
		}
	}
	opts.AllowedOrigins = allowedOrigins
	return cors.Handler(opts)
}
