package catalog

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/cinetrack/favorites-api/internal/api/metrics"
	"github.com/cinetrack/favorites-api/internal/core/domain"
	"github.com/cinetrack/favorites-api/internal/core/ports"
	"github.com/cinetrack/favorites-api/internal/infrastructure/db/redis"
)

// CachedClient decorates a CatalogClient with a Redis read-through cache.
// Concurrent misses for the same id — the common case during a list
// fan-out — are collapsed into a single origin call via singleflight.
// Cache failures are soft: the lookup falls through to the origin.
type CachedClient struct {
	origin ports.CatalogClient
	cache  *redis.MovieCache
	group  singleflight.Group
	logger zerolog.Logger
}

func NewCachedClient(origin ports.CatalogClient, cache *redis.MovieCache, logger zerolog.Logger) *CachedClient {
	return &CachedClient{origin: origin, cache: cache, logger: logger}
}

func (c *CachedClient) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	if movie, err := c.cache.Get(ctx, id); err != nil {
		c.logger.Warn().Err(err).Str("item_id", id).Msg("movie cache read failed")
	} else if movie != nil {
		metrics.CatalogLookupsTotal.WithLabelValues("hit").Inc()
		return movie, nil
	}

	v, err, _ := c.group.Do(id, func() (interface{}, error) {
		movie, err := c.origin.GetMovie(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := c.cache.Set(ctx, movie); err != nil {
			c.logger.Warn().Err(err).Str("item_id", id).Msg("movie cache write failed")
		}
		return movie, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Movie), nil
}
