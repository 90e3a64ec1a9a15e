package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/token"
	"hotel-booking/pkg/utils"
)

// Authenticate validates the bearer token and stores the caller identity in
// the request context. Missing, malformed and expired tokens get 401.
func Authenticate(tokens token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, raw, found := strings.Cut(authHeader, " ")
			raw = strings.TrimSpace(raw)
			if !found || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				logger.Warn("Rejected token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			identity, err := claims.Identity()
			if err != nil {
				logger.Warn("Token carries invalid identity", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), identity)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles lets the request through only when the authenticated caller
// holds one of roles. It must run after Authenticate.
func RequireRoles(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !identity.HasRole(roles...) {
				logger.Warn("Role check failed",
					zap.String("user_id", identity.UserID.String()),
					zap.String("role", string(identity.Role)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "You do not have permission to perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Admin is RequireRoles(admin).
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRoles(logger, entity.RoleAdmin)
}
