package explorer

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"starfield-server/internal/shared/errors"

	"github.com/google/uuid"
)

const maxDisplayNameLength = 64

type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	logger.Debug("Initializing explorer service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*Explorer, error) {
	return s.repo.GetByPublicID(ctx, publicID)
}

// CreateGuest registers an explorer without a sign-in provider.
func (s *Service) CreateGuest(ctx context.Context, displayName string) (*Explorer, error) {
	name, err := normalizeDisplayName(displayName)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, uuid.New(), name, nil, nil)
}

// FindOrCreateByGitHub returns the explorer linked to a GitHub account,
// refreshing the profile, or registers a new one.
func (s *Service) FindOrCreateByGitHub(ctx context.Context, githubID, displayName string, avatarURL *string) (*Explorer, error) {
	logger := s.logger.With(
		"component", "explorer_service",
		"operation", "find_or_create_github",
		"github_id", githubID,
	)

	name, err := normalizeDisplayName(displayName)
	if err != nil {
		name = "explorer-" + githubID
	}

	existing, err := s.repo.GetByGitHubID(ctx, githubID)
	switch {
	case err == nil:
		if existing.DisplayName != name || !equalPtr(existing.AvatarURL, avatarURL) {
			if err := s.repo.UpdateProfile(ctx, existing.ID, name, avatarURL); err != nil {
				return nil, err
			}
			existing.DisplayName = name
			existing.AvatarURL = avatarURL
		}
		logger.Debug("Found explorer for GitHub account", "explorer_id", existing.ID)
		return existing, nil
	case errors.GetType(err) != errors.ErrorTypeNotFound:
		return nil, err
	}

	logger.Info("Registering explorer for GitHub account")
	return s.repo.Create(ctx, uuid.New(), name, &githubID, avatarURL)
}

func normalizeDisplayName(displayName string) (string, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return "", errors.Validation("display name is required")
	}
	if utf8.RuneCountInString(name) > maxDisplayNameLength {
		return "", errors.Validationf("display name must be at most %d characters", maxDisplayNameLength)
	}
	return name, nil
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
