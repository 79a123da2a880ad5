package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"starfield-server/internal/auth"
	"starfield-server/internal/bookmark"
	"starfield-server/internal/middleware"
	"starfield-server/internal/shared/database"
	"starfield-server/internal/starsystem"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTestHandler(t *testing.T) (*BookmarkHandler, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stars := starsystem.NewService(starsystem.NewGenerator(starsystem.DefaultRecipe), nil, 1024, logger)
	svc := bookmark.NewService(bookmark.NewRepository(database.Wrap(sqlDB), logger), stars, logger)

	return NewBookmarkHandler(svc), mock
}

func withExplorer(r *http.Request, id int) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ExplorerContextKey, &auth.Claims{ExplorerID: id})
	return r.WithContext(ctx)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		explorer int
		mock     func(sqlmock.Sqlmock)
		want     int
	}{
		{"unauthenticated", `{"x":8,"y":1}`, 0, nil, http.StatusUnauthorized},
		{"bad json", `{"x":`, 7, nil, http.StatusBadRequest},
		{"out of range", `{"x":4294967296,"y":1}`, 7, nil, http.StatusBadRequest},
		{"empty sector", `{"x":0,"y":0}`, 7, nil, http.StatusBadRequest},
		{"created", `{"x":8,"y":1,"label":"home"}`, 7, func(m sqlmock.Sqlmock) {
			m.ExpectQuery("INSERT INTO bookmarks").
				WithArgs(7, int64(8), int64(1), "home").
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
		}, http.StatusCreated},
		{"below signed range", `{"x":-4294967288,"y":1}`, 7, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newTestHandler(t)
			if tt.mock != nil {
				tt.mock(mock)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(tt.body))
			if tt.explorer != 0 {
				req = withExplorer(req, tt.explorer)
			}
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("code = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestList(t *testing.T) {
	h, mock := newTestHandler(t)
	mock.ExpectQuery("SELECT id, sector_x, sector_y").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sector_x", "sector_y", "label", "created_at"}).
			AddRow(1, int64(8), int64(1), "home", time.Now()))

	rec := httptest.NewRecorder()
	h.List(rec, withExplorer(httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil), 7))

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", rec.Code, rec.Body.String())
	}

	var got []bookmark.Bookmark
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Star == nil || !got[0].Star.Exists {
		t.Errorf("bookmarks = %+v", got)
	}
}

func TestDelete(t *testing.T) {
	h, mock := newTestHandler(t)
	mock.ExpectExec("DELETE FROM bookmarks").
		WithArgs(9, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodDelete, "/api/bookmarks/9", nil)
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()
	h.Delete(rec, withExplorer(req, 7))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", rec.Code)
	}
}
