package handlers_test

import (
	"net/http"
	"testing"

	"loandesk/internal/adapters/http/handlers"
)

func TestLoginSuccess(t *testing.T) {
	app, _ := newTestApp(t)

	// login fails the test itself on anything but a 200 with a token
	login(t, app)
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"admin","password":"wrongpassword"}`},
		{"unknown username", `{"username":"nobody","password":"superpassword"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := request(t, app, http.MethodPost, "/api/auth/login", tc.body, "")
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", resp.StatusCode)
			}

			var env envelope
			decode(t, resp.Body, &env)
			if env.Message != handlers.MsgInvalidCredentials {
				t.Errorf("message = %q, want %q", env.Message, handlers.MsgInvalidCredentials)
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing username", `{"password":"superpassword"}`},
		{"missing password", `{"username":"admin"}`},
		{"malformed json", `{"username":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := request(t, app, http.MethodPost, "/api/auth/login", tc.body, "")
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
