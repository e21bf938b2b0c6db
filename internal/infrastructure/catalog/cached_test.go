package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cinetrack/favorites-api/internal/core/domain"
	redisdb "github.com/cinetrack/favorites-api/internal/infrastructure/db/redis"
)

type countingOrigin struct {
	mu    sync.Mutex
	calls int
	movie *domain.Movie
	err   error
}

func (o *countingOrigin) GetMovie(_ context.Context, id string) (*domain.Movie, error) {
	o.mu.Lock()
	o.calls++
	o.mu.Unlock()
	if o.err != nil {
		return nil, o.err
	}
	clone := *o.movie
	return &clone, nil
}

func newTestCache(t *testing.T) *redisdb.MovieCache {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(srv.Close)

	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisdb.NewMovieCache(client, time.Minute)
}

func TestCachedClient_ReadThrough(t *testing.T) {
	origin := &countingOrigin{movie: &domain.Movie{ID: "603", Title: "The Matrix"}}
	cached := NewCachedClient(origin, newTestCache(t), zerolog.Nop())

	first, err := cached.GetMovie(context.Background(), "603")
	if err != nil {
		t.Fatalf("first lookup failed: %v", err)
	}
	second, err := cached.GetMovie(context.Background(), "603")
	if err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}

	if first.Title != "The Matrix" || second.Title != "The Matrix" {
		t.Fatalf("unexpected movies: %+v / %+v", first, second)
	}
	if origin.calls != 1 {
		t.Fatalf("expected a single origin call, got %d", origin.calls)
	}
}

func TestCachedClient_FailuresNotCached(t *testing.T) {
	origin := &countingOrigin{err: domain.ErrMovieNotFound}
	cached := NewCachedClient(origin, newTestCache(t), zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := cached.GetMovie(context.Background(), "999"); err != domain.ErrMovieNotFound {
			t.Fatalf("lookup %d: expected ErrMovieNotFound, got %v", i, err)
		}
	}
	if origin.calls != 2 {
		t.Fatalf("failures must not be cached: got %d origin calls", origin.calls)
	}
}
