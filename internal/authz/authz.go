// Package authz holds every role and ownership decision. Handlers and
// services call these instead of comparing roles themselves.
package authz

import (
	"github.com/google/uuid"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/apperror"
)

// Identity is the authenticated caller; see entity.Identity.
type Identity = entity.Identity

func RequireRole(id Identity, roles ...entity.UserRole) error {
	if !id.HasRole(roles...) {
		return apperror.Forbidden("access denied")
	}
	return nil
}

func RequireAdmin(id Identity) error {
	if !id.IsAdmin() {
		return apperror.Forbidden("access denied. admin only")
	}
	return nil
}

// RequireOwnerOrAdmin allows admins and the resource's creator.
func RequireOwnerOrAdmin(id Identity, ownerID uuid.UUID) error {
	if id.IsAdmin() || id.UserID == ownerID {
		return nil
	}
	return apperror.Forbidden("access denied")
}

// CanManageBooking allows admins, the guest who booked and the hotel's owner.
func CanManageBooking(id Identity, bookingUserID, hotelOwnerID uuid.UUID) error {
	if id.IsAdmin() || id.UserID == bookingUserID || id.UserID == hotelOwnerID {
		return nil
	}
	return apperror.Forbidden("access denied")
}
