package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"hotel-booking/internal/authz"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/report"
	"hotel-booking/pkg/utils"
)

type BookingService interface {
	Create(ctx context.Context, caller authz.Identity, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	MyBookings(ctx context.Context, caller authz.Identity) ([]response.BookingResponse, error)
	HotelBookings(ctx context.Context, caller authz.Identity, hotelID string) ([]response.BookingResponse, error)
	AllBookings(ctx context.Context, caller authz.Identity) ([]response.BookingResponse, error)
	Cancel(ctx context.Context, caller authz.Identity, bookingID string) (*response.BookingResponse, error)
	ExportAll(ctx context.Context, caller authz.Identity, w io.Writer) error
}

type bookingService struct {
	repo    *repository.Repository
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, m *metrics.Metrics, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		metrics: m,
		log:     log.With(zap.String("service", "booking")),
	}
}

// Create books a hotel for the caller. The price is the number of started
// days times the nightly price, and the range must not overlap an active
// booking of the same hotel.
func (s *bookingService) Create(ctx context.Context, caller authz.Identity, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	hotelID, err := parseID(req.HotelID, "hotel")
	if err != nil {
		return nil, err
	}

	checkIn, ok := utils.ParseDate(req.CheckIn)
	if !ok {
		return nil, apperror.Validation("validation failed", map[string]string{"CheckIn": "Must be a date (YYYY-MM-DD or RFC 3339)"})
	}
	checkOut, ok := utils.ParseDate(req.CheckOut)
	if !ok {
		return nil, apperror.Validation("validation failed", map[string]string{"CheckOut": "Must be a date (YYYY-MM-DD or RFC 3339)"})
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, apperror.Internal("failed to create booking", err)
	}
	if hotel == nil {
		return nil, apperror.NotFound("hotel not found")
	}

	days := entity.Nights(checkIn, checkOut)
	if days <= 0 {
		return nil, apperror.Validation("check-out must be after check-in", map[string]string{"CheckOut": "Must be after check-in"})
	}

	now := nowFunc()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        newID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     caller.UserID,
		HotelID:    hotel.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		TotalPrice: float64(days) * hotel.Price,
		Status:     entity.BookingStatusActive,
	}

	if err := s.repo.Booking.CreateIfAvailable(ctx, booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingOverlap):
			s.metrics.IncBookingCreated("conflict")
			s.log.Info("Booking rejected: dates taken",
				zap.String("hotel_id", hotel.ID.String()),
				zap.Time("check_in", checkIn),
				zap.Time("check_out", checkOut))
			return nil, apperror.Conflict("hotel is already booked for these dates")
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperror.NotFound("hotel not found")
		}
		return nil, apperror.Internal("failed to create booking", err)
	}

	s.metrics.IncBookingCreated("created")
	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("user_id", caller.UserID.String()),
		zap.Int("days", days),
		zap.Float64("total_price", booking.TotalPrice))

	detail, err := s.repo.Booking.FindDetailByID(ctx, booking.ID)
	if err != nil || detail == nil {
		s.log.Warn("Created booking could not be reloaded", zap.Error(err))
		detail = &entity.BookingDetail{Booking: *booking, Hotel: *hotel}
	}

	resp := response.BookingDetailToResponse(detail, response.BookingInclude{Hotel: true, User: true})
	return &resp, nil
}

func (s *bookingService) MyBookings(ctx context.Context, caller authz.Identity) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.List(ctx, repository.BookingFilter{UserID: &caller.UserID})
	if err != nil {
		return nil, apperror.Internal("failed to get bookings", err)
	}
	return response.BookingDetailsToResponse(bookings, response.BookingInclude{Hotel: true}), nil
}

// HotelBookings is open to the hotel's owner and admins.
func (s *bookingService) HotelBookings(ctx context.Context, caller authz.Identity, hotelID string) ([]response.BookingResponse, error) {
	id, err := parseID(hotelID, "hotel")
	if err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to get bookings", err)
	}
	if hotel == nil {
		return nil, apperror.NotFound("hotel not found")
	}
	if err := authz.RequireOwnerOrAdmin(caller, hotel.CreatedBy); err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.List(ctx, repository.BookingFilter{HotelID: &id})
	if err != nil {
		return nil, apperror.Internal("failed to get bookings", err)
	}
	return response.BookingDetailsToResponse(bookings, response.BookingInclude{User: true}), nil
}

func (s *bookingService) AllBookings(ctx context.Context, caller authz.Identity) ([]response.BookingResponse, error) {
	if err := authz.RequireAdmin(caller); err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.List(ctx, repository.BookingFilter{})
	if err != nil {
		return nil, apperror.Internal("failed to get bookings", err)
	}
	return response.BookingDetailsToResponse(bookings, response.BookingInclude{Hotel: true, User: true}), nil
}

// Cancel marks an active booking cancelled. The guest, the hotel's owner and
// admins may cancel; the record is never deleted.
func (s *bookingService) Cancel(ctx context.Context, caller authz.Identity, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	detail, err := s.repo.Booking.FindDetailByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to cancel booking", err)
	}
	if detail == nil {
		return nil, apperror.NotFound("booking not found")
	}
	if err := authz.CanManageBooking(caller, detail.UserID, detail.Hotel.CreatedBy); err != nil {
		return nil, err
	}
	if detail.Status == entity.BookingStatusCancelled {
		return nil, apperror.Conflict("booking already cancelled")
	}

	if err := s.repo.Booking.Cancel(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookingNotActive) {
			return nil, apperror.Conflict("booking already cancelled")
		}
		return nil, apperror.Internal("failed to cancel booking", err)
	}

	s.metrics.IncBookingCancelled()
	s.log.Info("Booking cancelled",
		zap.String("booking_id", id.String()),
		zap.String("by", caller.UserID.String()))

	booking := detail.Booking
	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = nowFunc()
	resp := response.BookingToResponse(&booking)
	return &resp, nil
}

// ExportAll writes every booking as an XLSX workbook. Admin only.
func (s *bookingService) ExportAll(ctx context.Context, caller authz.Identity, w io.Writer) error {
	if err := authz.RequireAdmin(caller); err != nil {
		return err
	}

	bookings, err := s.repo.Booking.List(ctx, repository.BookingFilter{})
	if err != nil {
		return apperror.Internal("failed to export bookings", err)
	}

	rows := make([]report.BookingRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, report.BookingRow{
			ID:         b.ID.String(),
			Hotel:      b.Hotel.Title,
			Location:   b.Hotel.Location,
			Guest:      strings.TrimSpace(fmt.Sprintf("%s %s", b.Guest.FirstName, b.Guest.LastName)),
			Email:      b.Guest.Email,
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			Guests:     b.Guests,
			TotalPrice: b.TotalPrice,
			Status:     string(b.Status),
			CreatedAt:  b.CreatedAt,
		})
	}

	if err := report.WriteBookings(w, rows); err != nil {
		return apperror.Internal("failed to export bookings", err)
	}
	return nil
}
