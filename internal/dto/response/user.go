package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// UserSummaryResponse is the projection embedded in hotels and bookings.
type UserSummaryResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func SummaryToResponse(s entity.UserSummary) *UserSummaryResponse {
	return &UserSummaryResponse{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}
