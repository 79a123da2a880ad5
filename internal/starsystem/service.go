package starsystem

import (
	"context"
	"log/slog"

	"starfield-server/internal/shared/errors"
)

// RegionStar is a probed star with its offset inside the scanned window.
type RegionStar struct {
	Star
	OffsetX int `json:"offset_x"`
	OffsetY int `json:"offset_y"`
}

// Region is the result of scanning a rectangular window of sectors.
type Region struct {
	Origin Coordinate   `json:"origin"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Stars  []RegionStar `json:"stars"`
}

type Service struct {
	generator     *Generator
	cache         Cache
	maxRegionArea int
	logger        *slog.Logger
}

// NewService wires a generator with an optional cache. A nil cache disables
// caching.
func NewService(generator *Generator, cache Cache, maxRegionArea int, logger *slog.Logger) *Service {
	cacheName := "none"
	if cache != nil {
		cacheName = cache.Name()
	}
	logger.Debug("Initializing star system service", "cache", cacheName, "max_region_area", maxRegionArea)

	return &Service{
		generator:     generator,
		cache:         cache,
		maxRegionArea: maxRegionArea,
		logger:        logger,
	}
}

func (s *Service) Palette() []Color {
	return append([]Color(nil), s.generator.Recipe().Palette...)
}

// Probe answers the cheap existence query. It is never cached: generating
// is cheaper than a lookup.
func (s *Service) Probe(ctx context.Context, c Coordinate) (Star, error) {
	if err := ctx.Err(); err != nil {
		return Star{}, errors.WrapInternal("probe cancelled", err)
	}
	return s.generator.Probe(c.X, c.Y), nil
}

// Expand returns the full system, consulting the cache first. Cache errors
// are logged and generation proceeds.
func (s *Service) Expand(ctx context.Context, c Coordinate) (StarSystem, error) {
	logger := s.logger.With("operation", "expand", "coordinates", c.String())

	if err := ctx.Err(); err != nil {
		return StarSystem{}, errors.WrapInternal("expansion cancelled", err)
	}

	if s.cache != nil {
		sys, ok, err := s.cache.Get(ctx, c)
		if err != nil {
			logger.Warn("Star system cache read failed", "cache", s.cache.Name(), "error", err)
		} else if ok {
			logger.Debug("Star system served from cache", "cache", s.cache.Name())
			return sys, nil
		}
	}

	sys := s.generator.Expand(c.X, c.Y)

	if s.cache != nil && sys.Exists {
		if err := s.cache.Set(ctx, sys); err != nil {
			logger.Warn("Star system cache write failed", "cache", s.cache.Name(), "error", err)
		}
	}

	logger.Debug("Star system expanded", "exists", sys.Exists, "planets", len(sys.Planets))
	return sys, nil
}

// ScanRegion probes every sector of a width x height window starting at
// origin. Coordinates wrap modulo 2^32; only sectors holding a star are
// returned, in row-major order.
func (s *Service) ScanRegion(ctx context.Context, origin Coordinate, width, height int) (*Region, error) {
	logger := s.logger.With("operation", "scan_region", "origin", origin.String(), "width", width, "height", height)

	if width <= 0 || height <= 0 {
		return nil, errors.Validationf("region size must be positive, got %dx%d", width, height)
	}
	if width > s.maxRegionArea || height > s.maxRegionArea || width*height > s.maxRegionArea {
		return nil, errors.Validationf("region of %dx%d sectors exceeds the limit of %d", width, height, s.maxRegionArea)
	}

	region := &Region{
		Origin: origin,
		Width:  width,
		Height: height,
		Stars:  []RegionStar{},
	}

	for dy := 0; dy < height; dy++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapInternal("region scan cancelled", err)
		}
		for dx := 0; dx < width; dx++ {
			c := origin.Offset(dx, dy)
			star := s.generator.Probe(c.X, c.Y)
			if !star.Exists {
				continue
			}
			region.Stars = append(region.Stars, RegionStar{Star: star, OffsetX: dx, OffsetY: dy})
		}
	}

	logger.Debug("Region scanned", "stars", len(region.Stars))
	return region, nil
}
