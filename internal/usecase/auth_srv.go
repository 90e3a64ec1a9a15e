package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/token"
	"hotel-booking/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens token.Manager
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens token.Manager, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
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

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Login answers unknown emails and wrong passwords with the same error.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed", errs)
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal("failed to login", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login failed", zap.String("email", req.Email))
		return nil, apperror.Unauthorized("invalid credentials")
	}

	tokenString, expiresAt, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperror.Internal("failed to login", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, tokenString, expiresAt)
	return &resp, nil
}

type newUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// createUser hashes the password and stores a new user, defaulting the role
// to user. It is shared by registration and the admin user endpoint.
func createUser(ctx context.Context, users repository.UserRepository, log *zap.Logger, in newUserInput) (*entity.User, error) {
	role := entity.RoleUser
	if in.Role != "" {
		role = entity.UserRole(in.Role)
	}
	if !role.Valid() {
		return nil, apperror.Validation("invalid role", map[string]string{"Role": "Must be one of: user, admin, hotelOwner"})
	}

	existing, err := users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperror.Internal("failed to create user", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return nil, apperror.Internal("failed to process password", err)
	}

	now := nowFunc()
	user := &entity.User{
		Base: entity.Base{
			ID:        newID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.Conflict("email already registered")
		}
		return nil, apperror.Internal("failed to create user", err)
	}

	return user, nil
}
