package usecase

import (
	"context"
	"errors"
	"strings"

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

type UserService interface {
	List(ctx context.Context, caller authz.Identity) ([]response.UserResponse, error)
	Create(ctx context.Context, caller authz.Identity, req *request.CreateUserRequest) (*response.UserResponse, error)
	Get(ctx context.Context, caller authz.Identity, userID string) (*response.UserResponse, error)
	Update(ctx context.Context, caller authz.Identity, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, caller authz.Identity, userID string) error
}

type userService struct {
	users  repository.UserRepository
	hotels repository.HotelRepository
	cache  *cache.Cache
	log    *zap.Logger
}

// NewUserService takes the hotel repository and cache because cached hotels
// embed their creator's name and email.
func NewUserService(users repository.UserRepository, hotels repository.HotelRepository, hotelCache *cache.Cache, log *zap.Logger) UserService {
	return &userService{
		users:  users,
		hotels: hotels,
		cache:  hotelCache,
		log:    log.With(zap.String("service", "user")),
	}
}

func (s *userService) List(ctx context.Context, caller authz.Identity) ([]response.UserResponse, error) {
	if err := authz.RequireAdmin(caller); err != nil {
		return nil, err
	}

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to get users", err)
	}

	out := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, response.UserToResponse(u))
	}
	return out, nil
}

func (s *userService) Create(ctx context.Context, caller authz.Identity, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if err := authz.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed", errs)
	}

	user, err := createUser(ctx, s.users, s.log, newUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("admin_id", caller.UserID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Get(ctx context.Context, caller authz.Identity, userID string) (*response.UserResponse, error) {
	user, err := s.findAccessible(ctx, caller, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Update applies a partial profile change. Only admins may change a role.
func (s *userService) Update(ctx context.Context, caller authz.Identity, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed", errs)
	}

	user, err := s.findAccessible(ctx, caller, userID)
	if err != nil {
		return nil, err
	}

	before := user.Summary()

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.users.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, apperror.Internal("failed to update user", err)
		}
		if existing != nil {
			return nil, apperror.Conflict("email already registered")
		}
		user.Email = *req.Email
	}
	if req.Role != nil && entity.UserRole(*req.Role) != user.Role {
		if err := authz.RequireAdmin(caller); err != nil {
			return nil, apperror.Forbidden("only admins can change roles")
		}
		user.Role = entity.UserRole(*req.Role)
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		if len(*req.Password) < 6 {
			return nil, apperror.Validation("validation failed", map[string]string{"Password": "Minimum length is 6"})
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, apperror.Internal("failed to process password", err)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = nowFunc()

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, apperror.Conflict("email already registered")
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Internal("failed to update user", err)
	}

	if user.Summary() != before {
		s.evictCreatedHotels(ctx, user.ID)
	}
	s.log.Info("User updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, caller authz.Identity, userID string) error {
	user, err := s.findAccessible(ctx, caller, userID)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("user not found")
		}
		return apperror.Internal("failed to delete user", err)
	}
	return nil
}

// evictCreatedHotels drops cached hotels that show ownerID as their creator.
func (s *userService) evictCreatedHotels(ctx context.Context, ownerID uuid.UUID) {
	if !s.cache.Enabled() {
		return
	}

	keys := []string{hotelListCacheKey}
	hotels, err := s.hotels.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Warn("Failed to list hotels for cache eviction", zap.Error(err), zap.String("user_id", ownerID.String()))
	}
	for _, h := range hotels {
		keys = append(keys, hotelCacheKey(h.ID))
	}
	s.cache.Delete(ctx, keys...)
}

// findAccessible loads a user the caller may act on: themselves, or anyone
// for admins.
func (s *userService) findAccessible(ctx context.Context, caller authz.Identity, userID string) (*entity.User, error) {
	id, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwnerOrAdmin(caller, id); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to get user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}
