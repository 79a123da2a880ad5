package starsystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache shares expanded systems between server instances. Entries
// expire after ttl; Redis eviction policy handles memory pressure.
type RedisCache struct {
	client  redis.UniversalClient
	ttl     time.Duration
	version string
	logger  *slog.Logger
}

func NewRedisCache(client redis.UniversalClient, ttl time.Duration, version string, logger *slog.Logger) *RedisCache {
	logger.Debug("Initializing redis star system cache", "ttl", ttl, "version", version)

	return &RedisCache{
		client:  client,
		ttl:     ttl,
		version: version,
		logger:  logger,
	}
}

func (r *RedisCache) Get(ctx context.Context, c Coordinate) (StarSystem, bool, error) {
	data, err := r.client.Get(ctx, cacheKey(r.version, c)).Bytes()
	if errors.Is(err, redis.Nil) {
		return StarSystem{}, false, nil
	}
	if err != nil {
		return StarSystem{}, false, fmt.Errorf("failed to read cached system %s: %w", c, err)
	}

	var sys StarSystem
	if err := json.Unmarshal(data, &sys); err != nil {
		return StarSystem{}, false, fmt.Errorf("failed to decode cached system %s: %w", c, err)
	}
	return sys, true, nil
}

func (r *RedisCache) Set(ctx context.Context, sys StarSystem) error {
	data, err := json.Marshal(sys)
	if err != nil {
		return fmt.Errorf("failed to encode system %s: %w", sys.Coordinate, err)
	}

	if err := r.client.Set(ctx, cacheKey(r.version, sys.Coordinate), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache system %s: %w", sys.Coordinate, err)
	}
	return nil
}

func (r *RedisCache) Name() string {
	return "redis"
}
