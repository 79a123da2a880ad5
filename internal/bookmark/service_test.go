package bookmark

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"starfield-server/internal/shared/database"
	"starfield-server/internal/shared/errors"
	"starfield-server/internal/starsystem"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

var (
	withStar    = starsystem.Coordinate{X: 8, Y: 1}
	withoutStar = starsystem.Coordinate{X: 0, Y: 0}
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stars := starsystem.NewService(starsystem.NewGenerator(starsystem.DefaultRecipe), nil, 1024, logger)
	repo := NewRepository(database.Wrap(sqlDB), logger)

	return NewService(repo, stars, logger), mock
}

func TestService_Create(t *testing.T) {
	svc, mock := newTestService(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO bookmarks").
		WithArgs(7, int64(8), int64(1), "home").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, created))

	b, err := svc.Create(context.Background(), 7, withStar, "  home ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID != 3 || b.Label != "home" || !b.CreatedAt.Equal(created) {
		t.Errorf("bookmark = %+v", b)
	}
	if b.Star == nil || !b.Star.Exists {
		t.Errorf("star not attached: %+v", b.Star)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestService_CreateRejectsEmptySector(t *testing.T) {
	svc, mock := newTestService(t)

	_, err := svc.Create(context.Background(), 7, withoutStar, "nothing")
	if !errors.IsType(err, errors.ErrorTypeValidation) {
		t.Fatalf("error = %v, want validation", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("database touched for empty sector: %v", err)
	}
}

func TestService_CreateRejectsLongLabel(t *testing.T) {
	svc, _ := newTestService(t)

	label := make([]rune, maxLabelLength+1)
	for i := range label {
		label[i] = 'é'
	}

	_, err := svc.Create(context.Background(), 7, withStar, string(label))
	if !errors.IsType(err, errors.ErrorTypeValidation) {
		t.Fatalf("error = %v, want validation", err)
	}
}

func TestService_CreateDuplicate(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("INSERT INTO bookmarks").
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := svc.Create(context.Background(), 7, withStar, "")
	if !errors.IsType(err, errors.ErrorTypeConflict) {
		t.Fatalf("error = %v, want conflict", err)
	}
}

func TestService_ListAttachesStars(t *testing.T) {
	svc, mock := newTestService(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, sector_x, sector_y, label, created_at").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sector_x", "sector_y", "label", "created_at"}).
			AddRow(2, int64(0), int64(2), "second", now).
			AddRow(1, int64(8), int64(1), "first", now.Add(-time.Hour)))

	bookmarks, err := svc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bookmarks) != 2 {
		t.Fatalf("got %d bookmarks", len(bookmarks))
	}

	gen := starsystem.NewGenerator(starsystem.DefaultRecipe)
	for _, b := range bookmarks {
		want := gen.Probe(b.Coordinate.X, b.Coordinate.Y)
		if b.Star == nil || *b.Star != want {
			t.Errorf("bookmark %d star = %+v, want %+v", b.ID, b.Star, want)
		}
	}
}

func TestService_ListEmpty(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT id, sector_x, sector_y").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sector_x", "sector_y", "label", "created_at"}))

	bookmarks, err := svc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if bookmarks == nil || len(bookmarks) != 0 {
		t.Errorf("bookmarks = %#v, want empty slice", bookmarks)
	}
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantType errors.ErrorType
	}{
		{"owned", 1, ""},
		{"missing or foreign", 0, errors.ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mock := newTestService(t)
			mock.ExpectExec("DELETE FROM bookmarks").
				WithArgs(5, 7).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := svc.Delete(context.Background(), 7, 5)
			if tt.wantType == "" {
				if err != nil {
					t.Fatalf("Delete: %v", err)
				}
				return
			}
			if !errors.IsType(err, tt.wantType) {
				t.Fatalf("error = %v, want %s", err, tt.wantType)
			}
		})
	}
}
