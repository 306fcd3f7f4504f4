package services

import (
	"errors"
	"fmt"
	"log/slog"

	"financas-api/internal/dto"
	"financas-api/internal/models"
	"financas-api/internal/repositories"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles operator authentication. The service is
// single-tenant: one operator account is seeded at startup and every
// token is issued against it.
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Login authenticates the operator and returns an access token
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.recordAuthEvent("login_failed")
			// Never reveal whether the email exists
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.recordAuthEvent("login_failed")
		return nil, ErrInvalidCredentials
	}

	tokenString, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		// Non-critical: the token is already issued
		s.logger.Error("failed to update last login",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}

	s.recordAuthEvent("login_success")
	s.logger.Info("operator logged in", slog.String("email", user.Email))

	return &dto.TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// EnsureOperator creates the operator account if it does not exist yet.
// Called once at startup with the configured credentials.
func (s *AuthService) EnsureOperator(email, password string) error {
	if email == "" || password == "" {
		return errors.New("operator email and password are required")
	}

	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check operator account: %w", err)
	}

	hash, err := s.passwordService.HashPasswordWithoutValidation(password)
	if err != nil {
		return fmt.Errorf("failed to hash operator password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create operator account: %w", err)
	}

	s.logger.Info("operator account created", slog.String("email", email))
	return nil
}

func (s *AuthService) recordAuthEvent(eventType string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
	}
}
