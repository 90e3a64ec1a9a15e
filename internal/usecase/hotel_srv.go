package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/authz"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/utils"
)

const hotelListCacheKey = "hotels:all"

func hotelCacheKey(id uuid.UUID) string {
	return "hotels:" + id.String()
}

type HotelService interface {
	Create(ctx context.Context, caller authz.Identity, req *request.CreateHotelRequest) (*response.HotelResponse, error)
	List(ctx context.Context) ([]response.HotelResponse, error)
	Get(ctx context.Context, hotelID string) (*response.HotelResponse, error)
	MyHotels(ctx context.Context, caller authz.Identity) ([]response.HotelResponse, error)
	Update(ctx context.Context, caller authz.Identity, hotelID string, req *request.UpdateHotelRequest) (*response.HotelResponse, error)
	Delete(ctx context.Context, caller authz.Identity, hotelID string) error
}

type hotelService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewHotelService(repo *repository.Repository, hotelCache *cache.Cache, log *zap.Logger) HotelService {
	return &hotelService{
		repo:  repo,
		cache: hotelCache,
		log:   log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) Create(ctx context.Context, caller authz.Identity, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if err := authz.RequireRole(caller, entity.RoleAdmin, entity.RoleHotelOwner); err != nil {
		return nil, err
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hotel validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	now := nowFunc()
	hotel := &entity.Hotel{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        newID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Location:    req.Location,
		Price:       float64(*req.Price),
		ImageURL:    req.ImageURL,
		Rating:      req.Rating.Float(),
		Description: req.Description,
		CreatedBy:   caller.UserID,
	}
	if req.BestSeller != nil {
		hotel.BestSeller = *req.BestSeller
	}

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		return nil, apperror.Internal("failed to create hotel", err)
	}

	s.cache.Delete(ctx, hotelListCacheKey)
	s.log.Info("Hotel created",
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("created_by", caller.UserID.String()))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) List(ctx context.Context) ([]response.HotelResponse, error) {
	var cached []response.HotelResponse
	if s.cache.Get(ctx, hotelListCacheKey, &cached) {
		return cached, nil
	}

	hotels, err := s.repo.Hotel.FindAllWithCreator(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to get hotels", err)
	}

	out := make([]response.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, response.HotelWithCreatorToResponse(h))
	}

	s.cache.Set(ctx, hotelListCacheKey, out)
	return out, nil
}

func (s *hotelService) Get(ctx context.Context, hotelID string) (*response.HotelResponse, error) {
	id, err := parseID(hotelID, "hotel")
	if err != nil {
		return nil, err
	}

	var cached response.HotelResponse
	if s.cache.Get(ctx, hotelCacheKey(id), &cached) {
		return &cached, nil
	}

	hotel, err := s.repo.Hotel.FindWithCreator(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to get hotel", err)
	}
	if hotel == nil {
		return nil, apperror.NotFound("hotel not found")
	}

	resp := response.HotelWithCreatorToResponse(hotel)
	s.cache.Set(ctx, hotelCacheKey(id), resp)
	return &resp, nil
}

// MyHotels lists the caller's own hotels, each with its bookings and the
// guest of every booking.
func (s *hotelService) MyHotels(ctx context.Context, caller authz.Identity) ([]response.HotelResponse, error) {
	if err := authz.RequireRole(caller, entity.RoleAdmin, entity.RoleHotelOwner); err != nil {
		return nil, err
	}

	hotels, err := s.repo.Hotel.FindByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, apperror.Internal("failed to get hotels", err)
	}

	bookings, err := s.repo.Booking.List(ctx, repository.BookingFilter{HotelOwnerID: &caller.UserID})
	if err != nil {
		return nil, apperror.Internal("failed to get hotel bookings", err)
	}

	byHotel := make(map[uuid.UUID][]response.BookingResponse, len(hotels))
	for _, b := range bookings {
		byHotel[b.HotelID] = append(byHotel[b.HotelID], response.BookingDetailToResponse(b, response.BookingInclude{User: true}))
	}

	out := make([]response.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		resp := response.HotelToResponse(h)
		resp.Bookings = byHotel[h.ID]
		if resp.Bookings == nil {
			resp.Bookings = []response.BookingResponse{}
		}
		out = append(out, resp)
	}
	return out, nil
}

// Update changes only the fields present in req.
func (s *hotelService) Update(ctx context.Context, caller authz.Identity, hotelID string, req *request.UpdateHotelRequest) (*response.HotelResponse, error) {
	hotel, err := s.findManageable(ctx, caller, hotelID)
	if err != nil {
		return nil, err
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed", errs)
	}

	if req.Title != nil {
		hotel.Title = *req.Title
	}
	if req.Location != nil {
		hotel.Location = *req.Location
	}
	if req.Price != nil {
		hotel.Price = float64(*req.Price)
	}
	if req.ImageURL != nil {
		hotel.ImageURL = *req.ImageURL
	}
	if req.Rating != nil {
		hotel.Rating = req.Rating.Float()
	}
	if req.BestSeller != nil {
		hotel.BestSeller = *req.BestSeller
	}
	if req.Description != nil {
		hotel.Description = *req.Description
	}
	hotel.UpdatedAt = nowFunc()

	if err := s.repo.Hotel.Update(ctx, hotel); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("hotel not found")
		}
		return nil, apperror.Internal("failed to update hotel", err)
	}

	s.cache.Delete(ctx, hotelListCacheKey, hotelCacheKey(hotel.ID))
	s.log.Info("Hotel updated", zap.String("hotel_id", hotel.ID.String()))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

// Delete removes the hotel immediately; its bookings are removed with it.
func (s *hotelService) Delete(ctx context.Context, caller authz.Identity, hotelID string) error {
	hotel, err := s.findManageable(ctx, caller, hotelID)
	if err != nil {
		return err
	}

	if err := s.repo.Hotel.Delete(ctx, hotel.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("hotel not found")
		}
		return apperror.Internal("failed to delete hotel", err)
	}

	s.cache.Delete(ctx, hotelListCacheKey, hotelCacheKey(hotel.ID))
	s.log.Info("Hotel deleted",
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("by", caller.UserID.String()))
	return nil
}

func (s *hotelService) findManageable(ctx context.Context, caller authz.Identity, hotelID string) (*entity.Hotel, error) {
	id, err := parseID(hotelID, "hotel")
	if err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to get hotel", err)
	}
	if hotel == nil {
		return nil, apperror.NotFound("hotel not found")
	}
	if err := authz.RequireOwnerOrAdmin(caller, hotel.CreatedBy); err != nil {
		return nil, err
	}
	return hotel, nil
}
