package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// defaultAvatarURL generates a deterministic placeholder avatar for accounts
// registered without one.
func defaultAvatarURL(email string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email
}

// UserStore is the user persistence surface the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type authServiceImpl struct {
	userRepo   UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates an account, hashes the password and issues a token
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	avatar := req.Avatar
	if avatar == nil || *avatar == "" {
		url := defaultAvatarURL(req.Email)
		avatar = &url
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Avatar:       avatar,
		PasswordHash: &hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("User registered")

	return &dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    toUserResponse(user, false),
	}, nil
}

// Login verifies credentials and issues a token. Accounts created before
// password storage existed have no hash and authenticate by email alone.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if user.PasswordHash != nil {
		if !auth.CheckPassword(*user.PasswordHash, req.Password) {
			return nil, apperrors.ErrInvalidCredentials
		}
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("User logged in")

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    toUserResponse(user, false),
	}, nil
}

// GetProfile returns the authenticated user's profile
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{User: toUserResponse(user, true)}, nil
}

// UpdateProfile applies the provided name and avatar changes
func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Message: "Profile updated successfully",
		User:    toUserResponse(user, true),
	}, nil
}

func toUserResponse(user *models.User, withCreatedAt bool) dto.UserResponse {
	resp := dto.UserResponse{
		ID:     helpers.FormatID(user.ID),
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}
	if withCreatedAt {
		resp.CreatedAt = formatTime(user.CreatedAt)
	}
	return resp
}
