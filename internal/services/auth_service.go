// internal/services/auth_service.go
package services

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/neonmart/storefront-backend/internal/config"
	"github.com/neonmart/storefront-backend/internal/utils"
)

// AuthService checks the static admin credential and issues the session
// token admin routes require. There are no shopper accounts; customers are
// identified by the email on their orders.
type AuthService struct {
	cfg *config.Config
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // in seconds
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Admin.Username)) != 1 {
		return nil, ErrInvalidCredentials
	}

	if err := s.checkPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminJWT(req.Username, s.cfg.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.SessionTTL * 3600,
	}, nil
}

func (s *AuthService) checkPassword(password string) error {
	if s.cfg.Admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password))
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
