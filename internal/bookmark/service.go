package bookmark

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"starfield-server/internal/shared/errors"
	"starfield-server/internal/starsystem"
)

const maxLabelLength = 80

type Service struct {
	repo   *Repository
	stars  *starsystem.Service
	logger *slog.Logger
}

func NewService(repo *Repository, stars *starsystem.Service, logger *slog.Logger) *Service {
	logger.Debug("Initializing bookmark service")

	return &Service{
		repo:   repo,
		stars:  stars,
		logger: logger,
	}
}

// List returns the explorer's bookmarks with each star regenerated.
func (s *Service) List(ctx context.Context, explorerID int) ([]Bookmark, error) {
	bookmarks, err := s.repo.ListByExplorer(ctx, explorerID)
	if err != nil {
		return nil, err
	}

	for i := range bookmarks {
		star, err := s.stars.Probe(ctx, bookmarks[i].Coordinate)
		if err != nil {
			return nil, err
		}
		bookmarks[i].Star = &star
	}

	return bookmarks, nil
}

// Create bookmarks a sector. Only sectors holding a star can be bookmarked.
func (s *Service) Create(ctx context.Context, explorerID int, c starsystem.Coordinate, label string) (*Bookmark, error) {
	label = strings.TrimSpace(label)
	if utf8.RuneCountInString(label) > maxLabelLength {
		return nil, errors.Validationf("label must be at most %d characters", maxLabelLength)
	}

	star, err := s.stars.Probe(ctx, c)
	if err != nil {
		return nil, err
	}
	if !star.Exists {
		return nil, errors.Validationf("sector %s holds no star", c)
	}

	b, err := s.repo.Create(ctx, explorerID, c, label)
	if err != nil {
		return nil, err
	}
	b.Star = &star

	s.logger.Debug("Sector bookmarked", "explorer_id", explorerID, "coordinates", c.String())
	return b, nil
}

func (s *Service) Delete(ctx context.Context, explorerID, id int) error {
	return s.repo.Delete(ctx, explorerID, id)
}
