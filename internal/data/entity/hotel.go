package entity

import "github.com/google/uuid"

type Hotel struct {
	BaseNoDelete
	Title       string    `db:"title"`
	Location    string    `db:"location"`
	Price       float64   `db:"price"`
	ImageURL    string    `db:"image_url"`
	Rating      *float64  `db:"rating"`
	BestSeller  bool      `db:"best_seller"`
	Description string    `db:"description"`
	CreatedBy   uuid.UUID `db:"created_by"`
}

// HotelWithCreator is a hotel joined with its owner's public fields.
type HotelWithCreator struct {
	Hotel
	Creator UserSummary
}
