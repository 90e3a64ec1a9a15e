package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID         string               `json:"id"`
	UserID     string               `json:"userId"`
	HotelID    string               `json:"hotelId"`
	CheckIn    time.Time            `json:"checkIn"`
	CheckOut   time.Time            `json:"checkOut"`
	Guests     int                  `json:"guests"`
	TotalPrice float64              `json:"totalPrice"`
	Status     entity.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
	Hotel      *HotelResponse       `json:"hotel,omitempty"`
	User       *UserSummaryResponse `json:"user,omitempty"`
}

// BookingInclude selects which relations a booking response carries.
type BookingInclude struct {
	Hotel bool
	User  bool
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID.String(),
		UserID:     b.UserID.String(),
		HotelID:    b.HotelID.String(),
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func BookingDetailToResponse(d *entity.BookingDetail, include BookingInclude) BookingResponse {
	resp := BookingToResponse(&d.Booking)
	if include.Hotel {
		hotel := HotelToResponse(&d.Hotel)
		resp.Hotel = &hotel
	}
	if include.User {
		resp.User = SummaryToResponse(d.Guest)
	}
	return resp
}

func BookingDetailsToResponse(details []*entity.BookingDetail, include BookingInclude) []BookingResponse {
	out := make([]BookingResponse, 0, len(details))
	for _, d := range details {
		out = append(out, BookingDetailToResponse(d, include))
	}
	return out
}
