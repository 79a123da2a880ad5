package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"starfield-server/internal/auth"
	"starfield-server/internal/explorer"
	"starfield-server/internal/middleware"
	"starfield-server/internal/shared/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func newTestMeHandler(t *testing.T) (*MeHandler, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMeHandler(explorer.NewService(explorer.NewRepository(database.Wrap(sqlDB), logger), logger)), mock
}

func requestAs(publicID uuid.UUID) *http.Request {
	claims := &auth.Claims{
		ExplorerID:       5,
		RegisteredClaims: jwt.RegisteredClaims{Subject: publicID.String()},
	}
	req := httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil)
	return req.WithContext(context.WithValue(req.Context(), middleware.ExplorerContextKey, claims))
}

func TestMeHandler(t *testing.T) {
	h, mock := newTestMeHandler(t)
	publicID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("FROM explorers WHERE public_id").
		WithArgs(publicID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "public_id", "display_name", "github_id", "avatar_url", "created_at", "updated_at"}).
			AddRow(5, publicID.String(), "Deneb", nil, nil, now, now))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestAs(publicID))

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["id"] != publicID.String() || body["display_name"] != "Deneb" {
		t.Errorf("body = %v", body)
	}
	if _, leaked := body["github_id"]; leaked {
		t.Error("github id exposed")
	}
}

func TestMeHandler_DeletedExplorer(t *testing.T) {
	h, mock := newTestMeHandler(t)
	publicID := uuid.New()

	mock.ExpectQuery("FROM explorers WHERE public_id").
		WithArgs(publicID).
		WillReturnError(sql.ErrNoRows)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestAs(publicID))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", rec.Code)
	}
}

func TestMeHandler_NoClaims(t *testing.T) {
	h, _ := newTestMeHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", rec.Code)
	}
}
