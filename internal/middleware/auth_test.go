package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"starfield-server/internal/auth"
	"starfield-server/internal/explorer"
	"starfield-server/internal/shared/cookies"

	"github.com/google/uuid"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestRequireExplorer(t *testing.T) {
	issuer, err := auth.NewTokenIssuer(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	e := &explorer.Explorer{ID: 7, PublicID: uuid.New(), DisplayName: "vega"}
	token, err := issuer.Issue(e)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var seen *auth.Claims
	h := RequireExplorer(issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ExplorerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		cookie string
		want   int
	}{
		{"no cookie", "", http.StatusUnauthorized},
		{"garbage token", "not-a-token", http.StatusUnauthorized},
		{"valid token", token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookies.SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("code = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK {
				if seen == nil || seen.ExplorerID != 7 || !seen.Guest {
					t.Errorf("claims = %+v", seen)
				}
			} else if seen != nil {
				t.Error("handler ran for rejected request")
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var fromCtx string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("request id %q is not a uuid", id)
		}
		if fromCtx != id {
			t.Errorf("context id = %q, header id = %q", fromCtx, id)
		}
		if rec.Code != http.StatusTeapot {
			t.Errorf("code = %d", rec.Code)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("request id = %q", got)
		}
	})
}
