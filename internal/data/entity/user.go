package entity

type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleAdmin      UserRole = "admin"
	RoleHotelOwner UserRole = "hotelOwner"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleHotelOwner:
		return true
	}
	return false
}

type User struct {
	Base
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}

// UserSummary is the public projection of a user joined onto other records.
type UserSummary struct {
	FirstName string
	LastName  string
	Email     string
}

func (u *User) Summary() UserSummary {
	return UserSummary{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}
