package ports

import (
	"context"

	"github.com/cinetrack/favorites-api/internal/core/domain"
)

// CatalogClient resolves a catalog item id to full movie metadata.
// Lookups fail per-id: domain.ErrMovieNotFound when the catalog does not
// know the id, domain.ErrCatalogUnavailable on transport-level failure.
type CatalogClient interface {
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
}
