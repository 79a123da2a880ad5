package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"starfield-server/internal/shared/config"
)

func withConfig(t *testing.T, frontendURL, sameSite string, secure bool) {
	t.Helper()

	previous := config.GlobalConfig
	t.Cleanup(func() { config.GlobalConfig = previous })

	cfg := &config.Config{}
	cfg.Frontend.URL = frontendURL
	cfg.Auth.CookieSameSite = sameSite
	cfg.Auth.CookieSecure = secure
	cfg.Auth.TokenExpiration = 24 * time.Hour
	config.GlobalConfig = cfg
}

func TestSetSessionCookie(t *testing.T) {
	withConfig(t, "https://stars.example.com", "strict", true)

	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "token-value")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookieName || c.Value != "token-value" {
		t.Errorf("cookie = %s=%s", c.Name, c.Value)
	}
	if c.MaxAge != 86400 || !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteStrictMode {
		t.Errorf("cookie attributes = %+v", c)
	}
	if c.Domain != "stars.example.com" {
		t.Errorf("domain = %q", c.Domain)
	}
}

func TestClearSessionCookie(t *testing.T) {
	withConfig(t, "http://localhost:3000", "lax", false)

	rec := httptest.NewRecorder()
	ClearSessionCookie(rec)

	c := rec.Result().Cookies()[0]
	if c.Value != "" || c.MaxAge >= 0 {
		t.Errorf("cookie not cleared: %+v", c)
	}
	if c.Domain != "" {
		t.Errorf("localhost cookie should have no domain, got %q", c.Domain)
	}
}

func TestParseSameSite(t *testing.T) {
	tests := map[string]http.SameSite{
		"strict":  http.SameSiteStrictMode,
		"none":    http.SameSiteNoneMode,
		"lax":     http.SameSiteLaxMode,
		"unknown": http.SameSiteLaxMode,
	}
	for in, want := range tests {
		if got := parseSameSite(in); got != want {
			t.Errorf("parseSameSite(%q) = %v, want %v", in, got, want)
		}
	}
}
