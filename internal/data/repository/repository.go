package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"hotel-booking/pkg/database"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrBookingOverlap means an active booking already covers part of the range.
	ErrBookingOverlap = errors.New("hotel is already booked for these dates")
	// ErrBookingNotActive means the booking was already cancelled.
	ErrBookingNotActive = errors.New("booking is not active")
)

type Repository struct {
	User    UserRepository
	Hotel   HotelRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Hotel:   NewHotelRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
