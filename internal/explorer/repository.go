package explorer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"starfield-server/internal/shared/database"
	apperrors "starfield-server/internal/shared/errors"

	"github.com/google/uuid"
)

const explorerColumns = `id, public_id, display_name, github_id, avatar_url, created_at, updated_at`

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing explorer repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Create(ctx context.Context, publicID uuid.UUID, displayName string, githubID, avatarURL *string) (*Explorer, error) {
	logger := r.logger.With(
		"component", "explorer_repository",
		"operation", "create",
		"public_id", publicID,
	)
	logger.Debug("Creating explorer")

	query := `
		INSERT INTO explorers (public_id, display_name, github_id, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + explorerColumns

	explorer, err := scanExplorer(r.db.QueryRowContext(ctx, query, publicID, displayName, githubID, avatarURL))
	if err != nil {
		return nil, apperrors.WrapInternal("failed to create explorer", err)
	}

	logger.Info("Explorer created", "explorer_id", explorer.ID)
	return explorer, nil
}

func (r *Repository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*Explorer, error) {
	query := `SELECT ` + explorerColumns + ` FROM explorers WHERE public_id = $1`

	explorer, err := scanExplorer(r.db.QueryRowContext(ctx, query, publicID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("explorer not found with id: %s", publicID)
	}
	if err != nil {
		return nil, apperrors.WrapInternal("failed to get explorer", err)
	}
	return explorer, nil
}

func (r *Repository) GetByGitHubID(ctx context.Context, githubID string) (*Explorer, error) {
	query := `SELECT ` + explorerColumns + ` FROM explorers WHERE github_id = $1`

	explorer, err := scanExplorer(r.db.QueryRowContext(ctx, query, githubID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("explorer not found for github id: %s", githubID)
	}
	if err != nil {
		return nil, apperrors.WrapInternal("failed to get explorer by github id", err)
	}
	return explorer, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id int, displayName string, avatarURL *string) error {
	query := `UPDATE explorers SET display_name = $2, avatar_url = $3, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, displayName, avatarURL); err != nil {
		return apperrors.WrapInternal("failed to update explorer profile", err)
	}
	return nil
}

func scanExplorer(row *sql.Row) (*Explorer, error) {
	var e Explorer
	err := row.Scan(
		&e.ID,
		&e.PublicID,
		&e.DisplayName,
		&e.GitHubID,
		&e.AvatarURL,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan explorer: %w", err)
	}
	return &e, nil
}
