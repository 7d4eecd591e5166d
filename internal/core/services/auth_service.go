package services

import (
	"context"
	"errors"

	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/config"
	"loandesk/internal/pkg/jwt"
	"loandesk/internal/pkg/password"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles authentication business logic
type AuthService struct {
	credentials repositories.CredentialStore
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(credentials repositories.CredentialStore, cfg *config.Config) *AuthService {
	return &AuthService{
		credentials: credentials,
		cfg:         cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token string `json:"token"`
}

// Login verifies the credential and mints a signed bearer token.
// Unknown usernames and wrong passwords fail identically so callers
// cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	credential, ok := s.credentials.GetByUsername(input.Username)
	if !ok || !password.Verify(input.Password, credential.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(
		credential.ID,
		credential.Username,
		s.cfg.JWT.Secret,
		s.cfg.JWT.ExpirySeconds,
	)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token}, nil
}
