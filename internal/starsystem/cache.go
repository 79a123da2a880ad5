package starsystem

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache stores expanded systems by coordinate. A cache may only change
// latency: every stored value must equal what the generator would return.
type Cache interface {
	Get(ctx context.Context, c Coordinate) (StarSystem, bool, error)
	Set(ctx context.Context, sys StarSystem) error
	Name() string
}

// cacheKey includes the recipe version so a recipe change never serves stale
// systems from a shared cache.
func cacheKey(version string, c Coordinate) string {
	return fmt.Sprintf("starsystem:%s:%d:%d", version, c.X, c.Y)
}

type MemoryCache struct {
	entries *lru.Cache[Coordinate, StarSystem]
	logger  *slog.Logger
}

// NewMemoryCache returns an LRU cache holding at most size systems.
func NewMemoryCache(size int, logger *slog.Logger) (*MemoryCache, error) {
	entries, err := lru.New[Coordinate, StarSystem](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	logger.Debug("Initializing in-memory star system cache", "size", size)

	return &MemoryCache{
		entries: entries,
		logger:  logger,
	}, nil
}

func (m *MemoryCache) Get(_ context.Context, c Coordinate) (StarSystem, bool, error) {
	sys, ok := m.entries.Get(c)
	if !ok {
		return StarSystem{}, false, nil
	}
	return sys.clone(), true, nil
}

func (m *MemoryCache) Set(_ context.Context, sys StarSystem) error {
	evicted := m.entries.Add(sys.Coordinate, sys.clone())
	if evicted {
		m.logger.Debug("Evicted least recently used star system", "size", m.entries.Len())
	}
	return nil
}

func (m *MemoryCache) Name() string {
	return "memory"
}

func (m *MemoryCache) Len() int {
	return m.entries.Len()
}

// clone copies the planet and moon slices so cached values cannot be
// mutated through a returned system.
func (s StarSystem) clone() StarSystem {
	if s.Planets == nil {
		return s
	}
	planets := make([]Planet, len(s.Planets))
	for i, p := range s.Planets {
		p.Moons = append(make([]float64, 0, len(p.Moons)), p.Moons...)
		planets[i] = p
	}
	s.Planets = planets
	return s
}
