package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cinetrack/favorites-api/internal/core/domain"
)

const defaultCacheTTL = 6 * time.Hour

// MovieCache stores resolved catalog metadata in Redis so repeated
// enrichment of the same item does not hit the upstream catalog.
// Key format: movie:<item_id>
type MovieCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMovieCache creates a MovieCache wrapping the given Redis client.
func NewMovieCache(client *redis.Client, ttl time.Duration) *MovieCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &MovieCache{client: client, ttl: ttl}
}

// Get returns the cached movie, or (nil, nil) on a miss.
func (c *MovieCache) Get(ctx context.Context, id string) (*domain.Movie, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var movie domain.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &movie, nil
}

// Set stores the movie under its id, expiring after the cache TTL.
func (c *MovieCache) Set(ctx context.Context, movie *domain.Movie) error {
	raw, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(movie.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *MovieCache) key(id string) string {
	return "movie:" + id
}
