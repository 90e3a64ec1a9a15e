package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"
)

// BookingFilter narrows List. Nil fields are ignored.
type BookingFilter struct {
	UserID       *uuid.UUID
	HotelID      *uuid.UUID
	HotelOwnerID *uuid.UUID
}

type BookingRepository interface {
	CreateIfAvailable(ctx context.Context, booking *entity.Booking) error
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error)
	List(ctx context.Context, filter BookingFilter) ([]*entity.BookingDetail, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const (
	bookingColumns = `b.id, b.user_id, b.hotel_id, b.check_in, b.check_out, b.guests,
	b.total_price, b.status, b.created_at, b.updated_at`

	bookingDetailSelect = `
		SELECT ` + bookingColumns + `, ` + hotelColumns + `,
		       u.first_name, u.last_name, u.email
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		JOIN users u ON u.id = b.user_id
	`

	lockHotelQuery = `SELECT 1 FROM hotels WHERE id = $1 FOR UPDATE`

	overlapQuery = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE hotel_id = $1
			  AND status = 'active'
			  AND check_in <= $3
			  AND check_out >= $2
		)
	`

	insertBookingQuery = `
		INSERT INTO bookings (id, user_id, hotel_id, check_in, check_out, guests,
		                      total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
)

func bookingDest(b *entity.Booking) []any {
	return []any{
		&b.ID,
		&b.UserID,
		&b.HotelID,
		&b.CheckIn,
		&b.CheckOut,
		&b.Guests,
		&b.TotalPrice,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func bookingDetailDest(d *entity.BookingDetail) []any {
	dest := bookingDest(&d.Booking)
	dest = append(dest, hotelDest(&d.Hotel)...)
	return append(dest, creatorDest(&d.Guest)...)
}

// CreateIfAvailable inserts the booking unless an active booking for the
// same hotel overlaps its dates. The hotel row is locked for the duration of
// the check so concurrent requests for one hotel are serialised.
func (r *bookingRepository) CreateIfAvailable(ctx context.Context, booking *entity.Booking) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.log.Warn("Failed to rollback booking transaction", zap.Error(rbErr))
			}
		}
	}()

	var one int
	if err = tx.QueryRow(ctx, lockHotelQuery, booking.HotelID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrNotFound
			return err
		}
		r.log.Error("Failed to lock hotel",
			zap.Error(err),
			zap.String("hotel_id", booking.HotelID.String()),
		)
		return fmt.Errorf("lock hotel %s: %w", booking.HotelID.String(), err)
	}

	var taken bool
	if err = tx.QueryRow(ctx, overlapQuery, booking.HotelID, booking.CheckIn, booking.CheckOut).Scan(&taken); err != nil {
		r.log.Error("Failed to check booking overlap",
			zap.Error(err),
			zap.String("hotel_id", booking.HotelID.String()),
		)
		return fmt.Errorf("check overlap: %w", err)
	}
	if taken {
		err = ErrBookingOverlap
		return err
	}

	_, err = tx.Exec(ctx, insertBookingQuery,
		booking.ID,
		booking.UserID,
		booking.HotelID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Guests,
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("hotel_id", booking.HotelID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking", zap.Error(err))
		return fmt.Errorf("commit booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	query := bookingDetailSelect + ` WHERE b.id = $1`

	var detail entity.BookingDetail
	err := r.db.QueryRow(ctx, query, id).Scan(bookingDetailDest(&detail)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking detail",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking detail %s: %w", id.String(), err)
	}

	return &detail, nil
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) ([]*entity.BookingDetail, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.UserID != nil {
		add("b.user_id = $%d", *filter.UserID)
	}
	if filter.HotelID != nil {
		add("b.hotel_id = $%d", *filter.HotelID)
	}
	if filter.HotelOwnerID != nil {
		add("h.created_by = $%d", *filter.HotelOwnerID)
	}

	query := bookingDetailSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*entity.BookingDetail, 0)
	for rows.Next() {
		var detail entity.BookingDetail
		if err := rows.Scan(bookingDetailDest(&detail)...); err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

// Cancel flips an active booking to cancelled. A booking that is missing or
// already cancelled yields ErrBookingNotActive.
func (r *bookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'active'
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("cancel booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingNotActive
	}

	r.log.Info("Booking cancelled", zap.String("booking_id", id.String()))
	return nil
}
