package entity

import "github.com/google/uuid"

// Identity is the caller as proven by a verified bearer token.
type Identity struct {
	UserID uuid.UUID
	Role   UserRole
}

func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

func (id Identity) HasRole(roles ...UserRole) bool {
	for _, r := range roles {
		if id.Role == r {
			return true
		}
	}
	return false
}
