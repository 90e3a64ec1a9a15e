package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	FindWithCreator(ctx context.Context, id uuid.UUID) (*entity.HotelWithCreator, error)
	FindAllWithCreator(ctx context.Context) ([]*entity.HotelWithCreator, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotel, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

const hotelColumns = `h.id, h.title, h.location, h.price, h.image_url, h.rating,
	h.best_seller, h.description, h.created_by, h.created_at, h.updated_at`

func hotelDest(h *entity.Hotel) []any {
	return []any{
		&h.ID,
		&h.Title,
		&h.Location,
		&h.Price,
		&h.ImageURL,
		&h.Rating,
		&h.BestSeller,
		&h.Description,
		&h.CreatedBy,
		&h.CreatedAt,
		&h.UpdatedAt,
	}
}

func creatorDest(u *entity.UserSummary) []any {
	return []any{&u.FirstName, &u.LastName, &u.Email}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (id, title, location, price, image_url, rating, best_seller,
		                    description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Title,
		hotel.Location,
		hotel.Price,
		hotel.ImageURL,
		hotel.Rating,
		hotel.BestSeller,
		hotel.Description,
		hotel.CreatedBy,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("title", hotel.Title),
			zap.String("created_by", hotel.CreatedBy.String()),
		)
		return fmt.Errorf("create hotel %s: %w", hotel.Title, err)
	}

	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels h WHERE h.id = $1`

	var hotel entity.Hotel
	err := r.db.QueryRow(ctx, query, id).Scan(hotelDest(&hotel)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return nil, fmt.Errorf("find hotel by ID %s: %w", id.String(), err)
	}

	return &hotel, nil
}

func (r *hotelRepository) FindWithCreator(ctx context.Context, id uuid.UUID) (*entity.HotelWithCreator, error) {
	query := `
		SELECT ` + hotelColumns + `, u.first_name, u.last_name, u.email
		FROM hotels h
		JOIN users u ON u.id = h.created_by
		WHERE h.id = $1
	`

	var hotel entity.HotelWithCreator
	dest := append(hotelDest(&hotel.Hotel), creatorDest(&hotel.Creator)...)
	err := r.db.QueryRow(ctx, query, id).Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel with creator",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return nil, fmt.Errorf("find hotel with creator %s: %w", id.String(), err)
	}

	return &hotel, nil
}

func (r *hotelRepository) FindAllWithCreator(ctx context.Context) ([]*entity.HotelWithCreator, error) {
	query := `
		SELECT ` + hotelColumns + `, u.first_name, u.last_name, u.email
		FROM hotels h
		JOIN users u ON u.id = h.created_by
		ORDER BY h.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list hotels", zap.Error(err))
		return nil, fmt.Errorf("find all hotels: %w", err)
	}
	defer rows.Close()

	hotels := make([]*entity.HotelWithCreator, 0)
	for rows.Next() {
		var hotel entity.HotelWithCreator
		dest := append(hotelDest(&hotel.Hotel), creatorDest(&hotel.Creator)...)
		if err := rows.Scan(dest...); err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, &hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotel rows: %w", err)
	}

	return hotels, nil
}

func (r *hotelRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels h WHERE h.created_by = $1 ORDER BY h.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to list hotels by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find hotels by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	hotels := make([]*entity.Hotel, 0)
	for rows.Next() {
		var hotel entity.Hotel
		if err := rows.Scan(hotelDest(&hotel)...); err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, &hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotel rows: %w", err)
	}

	return hotels, nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET title = $2, location = $3, price = $4, image_url = $5, rating = $6,
		    best_seller = $7, description = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Title,
		hotel.Location,
		hotel.Price,
		hotel.ImageURL,
		hotel.Rating,
		hotel.BestSeller,
		hotel.Description,
		hotel.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update hotel",
			zap.Error(err),
			zap.String("hotel_id", hotel.ID.String()),
		)
		return fmt.Errorf("update hotel %s: %w", hotel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the hotel; its bookings go with it (ON DELETE CASCADE).
func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete hotel",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return fmt.Errorf("delete hotel %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Hotel deleted", zap.String("hotel_id", id.String()))
	return nil
}
