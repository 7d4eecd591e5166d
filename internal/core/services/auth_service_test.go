package services

import (
	"context"
	"errors"
	"testing"

	"loandesk/internal/adapters/persistence/memory"
	"loandesk/internal/config"
	"loandesk/internal/pkg/jwt"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	credentials, err := memory.SeedCredentialStore("admin", "superpassword")
	if err != nil {
		t.Fatalf("failed to seed credentials: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			ExpirySeconds: 3600,
		},
	}

	return NewAuthService(credentials, cfg)
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	result, err := svc.Login(context.Background(), &LoginInput{
		Username: "admin",
		Password: "superpassword",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("Login returned an empty token")
	}

	claims, err := jwt.ValidateToken(result.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username claim = %q, want %q", claims.Username, "admin")
	}
	if claims.UserID == "" {
		t.Error("UserID claim is empty")
	}
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), &LoginInput{
		Username: "admin",
		Password: "wrongpassword",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthServiceLoginUnknownUsername(t *testing.T) {
	svc := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), &LoginInput{
		Username: "nobody",
		Password: "superpassword",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}
