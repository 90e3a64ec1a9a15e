package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Location    string               `json:"location"`
	Price       float64              `json:"price"`
	ImageURL    string               `json:"imageUrl"`
	Rating      *float64             `json:"rating"`
	BestSeller  bool                 `json:"bestSeller"`
	Description string               `json:"description"`
	CreatedBy   string               `json:"createdBy"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Creator     *UserSummaryResponse `json:"creator,omitempty"`
	Bookings    []BookingResponse    `json:"bookings,omitempty"`
}

func HotelToResponse(h *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:          h.ID.String(),
		Title:       h.Title,
		Location:    h.Location,
		Price:       h.Price,
		ImageURL:    h.ImageURL,
		Rating:      h.Rating,
		BestSeller:  h.BestSeller,
		Description: h.Description,
		CreatedBy:   h.CreatedBy.String(),
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func HotelWithCreatorToResponse(h *entity.HotelWithCreator) HotelResponse {
	resp := HotelToResponse(&h.Hotel)
	resp.Creator = SummaryToResponse(h.Creator)
	return resp
}
