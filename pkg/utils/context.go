package utils

import (
	"context"

	"hotel-booking/internal/data/entity"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
)

// GetIdentityFromContext returns the caller set by the auth middleware.
func GetIdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(entity.Identity)
	return identity, ok
}

func SetIdentityContext(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}
