package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
	"github.com/mertcan/placeport/internal/pkg/auth"
	"github.com/mertcan/placeport/internal/pkg/rules"
)

// AuthService handles registration, login and token issuance
type AuthService struct {
	store      store.Store
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(store store.Store, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		store:      store,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register validates the request, creates the user and returns a signed
// token. Email format and password strength are checked here, before the
// store is touched.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !rules.ValidateEmail(req.Email) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid email format").
			WithDetails(map[string]interface{}{"field": "email"})
	}

	if violations := rules.ValidatePasswordStrength(req.Password); violations.Blocking() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "password does not meet requirements").
			WithDetails(map[string]interface{}{"violations": violations.Messages()})
	}

	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidRole
	}

	userID, err := s.store.CreateUser(ctx, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Role == models.RoleStudent {
		_, err := s.store.CreateNotification(ctx, userID,
			"Welcome to PlacePort",
			"Complete your profile to start applying for placements.",
			models.NotificationInfo)
		if err != nil {
			s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create welcome notification")
		}
	}

	return s.buildAuthResponse(user)
}

// Login verifies credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.store.VerifyPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return s.buildAuthResponse(user)
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}

// GetUser returns a user's public record
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
