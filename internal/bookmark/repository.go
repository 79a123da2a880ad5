package bookmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"starfield-server/internal/shared/database"
	apperrors "starfield-server/internal/shared/errors"
	"starfield-server/internal/starsystem"

	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

type Repository struct {
	db     database.Executor
	logger *slog.Logger
}

func NewRepository(db database.Executor, logger *slog.Logger) *Repository {
	logger.Debug("Initializing bookmark repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Create(ctx context.Context, explorerID int, c starsystem.Coordinate, label string) (*Bookmark, error) {
	logger := r.logger.With(
		"component", "bookmark_repository",
		"operation", "create",
		"explorer_id", explorerID,
		"coordinates", c.String(),
	)

	query := `
		INSERT INTO bookmarks (explorer_id, sector_x, sector_y, label)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	b := &Bookmark{ExplorerID: explorerID, Coordinate: c, Label: label}
	err := r.db.QueryRowContext(ctx, query, explorerID, int64(c.X), int64(c.Y), label).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperrors.Conflictf("sector %s is already bookmarked", c)
		}
		return nil, apperrors.WrapInternal("failed to create bookmark", err)
	}

	logger.Info("Bookmark created", "bookmark_id", b.ID)
	return b, nil
}

// ListByExplorer returns the explorer's bookmarks, newest first.
func (r *Repository) ListByExplorer(ctx context.Context, explorerID int) ([]Bookmark, error) {
	query := `
		SELECT id, sector_x, sector_y, label, created_at
		FROM bookmarks
		WHERE explorer_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, explorerID)
	if err != nil {
		return nil, apperrors.WrapInternal("failed to list bookmarks", err)
	}
	defer rows.Close()

	bookmarks := []Bookmark{}
	for rows.Next() {
		var (
			b    Bookmark
			x, y int64
		)
		if err := rows.Scan(&b.ID, &x, &y, &b.Label, &b.CreatedAt); err != nil {
			return nil, apperrors.WrapInternal("failed to scan bookmark", err)
		}
		if x < 0 || x > 0xFFFFFFFF || y < 0 || y > 0xFFFFFFFF {
			return nil, apperrors.WrapInternal("failed to scan bookmark",
				fmt.Errorf("bookmark %d has out of range sector (%d,%d)", b.ID, x, y))
		}
		b.ExplorerID = explorerID
		b.Coordinate = starsystem.Coordinate{X: uint32(x), Y: uint32(y)}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapInternal("failed to iterate bookmarks", err)
	}

	return bookmarks, nil
}

// Delete removes a bookmark owned by the explorer. Bookmarks of other
// explorers are reported as not found.
func (r *Repository) Delete(ctx context.Context, explorerID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1 AND explorer_id = $2`, id, explorerID)
	if err != nil {
		return apperrors.WrapInternal("failed to delete bookmark", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.WrapInternal("failed to delete bookmark", err)
	}
	if affected == 0 {
		return apperrors.NotFoundf("bookmark not found with id: %d", id)
	}
	return nil
}
