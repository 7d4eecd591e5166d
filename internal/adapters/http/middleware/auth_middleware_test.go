package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"loandesk/internal/adapters/http/middleware"
	"loandesk/internal/config"
	"loandesk/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func newGuardedApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/protected", middleware.AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userID":   c.Locals("userID"),
			"username": c.Locals("username"),
		})
	})
	return app
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			ExpirySeconds: 3600,
		},
	}
}

func get(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	return resp
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	cfg := testConfig()
	app := newGuardedApp(t, cfg)

	token, err := jwt.GenerateToken("1", "admin", cfg.JWT.Secret, cfg.JWT.ExpirySeconds)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	resp := get(t, app, "Bearer "+token)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	cfg := testConfig()
	app := newGuardedApp(t, cfg)

	expired, err := jwt.GenerateToken("1", "admin", cfg.JWT.Secret, -60)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	foreign, err := jwt.GenerateToken("1", "admin", "other-secret", 3600)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	cases := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"no bearer prefix", "Token abc"},
		{"malformed token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
		{"wrong signing secret", "Bearer " + foreign},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, app, tc.authorization)
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", resp.StatusCode)
			}
		})
	}
}
