package handlers

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	mw "github.com/OriDaer/Portfolio/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func TestLoginSuccessSetsCookieAndRedirects(t *testing.T) {
	app := newHandlerTestApp()
	h := NewAuthHandler(&fakeAuthService{token: "signed-token"})
	app.Post("/login", h.Login)

	resp, err := app.Test(formRequest("/login", url.Values{
		"username": {"daer"},
		"password": {"123456"},
	}))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == mw.SessionCookieName {
			found = true
			if c.Value != "signed-token" {
				t.Errorf("session cookie value = %q", c.Value)
			}
			if !c.HttpOnly {
				t.Error("session cookie is not HTTP-only")
			}
		}
	}
	if !found {
		t.Error("session cookie was not set")
	}
}

// Wrong password and unknown user produce the identical response.
func TestLoginRejectedUniformMessage(t *testing.T) {
	app := newHandlerTestApp()
	h := NewAuthHandler(&fakeAuthService{token: "signed-token"})
	app.Post("/login", h.Login)

	for _, form := range []url.Values{
		{"username": {"daer"}, "password": {"wrong-password"}},
		{"username": {"nobody"}, "password": {"123456"}},
	} {
		resp, err := app.Test(formRequest("/login", form))
		if err != nil {
			t.Fatalf("app.Test returned error: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if !strings.Contains(string(body), "Usuario o contraseña incorrectos") {
			t.Errorf("body = %s, want the generic credentials message", body)
		}
		for _, c := range resp.Cookies() {
			if c.Name == mw.SessionCookieName && c.Value != "" {
				t.Error("session cookie set on failed login")
			}
		}
	}
}

func TestLoginValidationFailure(t *testing.T) {
	app := newHandlerTestApp()
	h := NewAuthHandler(&fakeAuthService{token: "signed-token"})
	app.Post("/login", h.Login)

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing username", url.Values{"password": {"123456"}}},
		{"short password", url.Values{"username": {"daer"}, "password": {"123"}}},
		{"short username", url.Values{"username": {"ab"}, "password": {"123456"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(formRequest("/login", tt.form))
			if err != nil {
				t.Fatalf("app.Test returned error: %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
			}
		})
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newHandlerTestApp()
	h := NewAuthHandler(&fakeAuthService{token: "signed-token"})
	app.Get("/logout", h.Logout)

	resp, err := app.Test(httptest.NewRequest("GET", "/logout", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == mw.SessionCookieName && c.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie was not cleared")
	}
}
