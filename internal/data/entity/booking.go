package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	BaseNoDelete
	UserID     uuid.UUID     `db:"user_id"`
	HotelID    uuid.UUID     `db:"hotel_id"`
	CheckIn    time.Time     `db:"check_in"`
	CheckOut   time.Time     `db:"check_out"`
	Guests     int           `db:"guests"`
	TotalPrice float64       `db:"total_price"`
	Status     BookingStatus `db:"status"`
}

// BookingDetail is a booking joined with its hotel and guest.
type BookingDetail struct {
	Booking
	Hotel Hotel
	Guest UserSummary
}

// Nights is the number of started 24h periods between checkIn and checkOut.
// It is zero or negative for empty or inverted ranges.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
