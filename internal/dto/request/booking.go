package request

type CreateBookingRequest struct {
	HotelID  string `json:"hotelId" validate:"required,uuid"`
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
	Guests   int    `json:"guests" validate:"required,gte=1"`
}
