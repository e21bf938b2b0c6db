package ports

import (
	"context"

	"github.com/cinetrack/favorites-api/internal/core/domain"
)

// FavoritesService defines set-membership operations on a user's
// favourites plus read-time enrichment.
type FavoritesService interface {
	// Add inserts itemID after confirming it exists upstream. Duplicate
	// membership is a distinguishable error, not a silent success.
	Add(ctx context.Context, userID, itemID string) ([]string, error)
	// Remove is idempotent: removing an absent id succeeds.
	Remove(ctx context.Context, userID, itemID string) ([]string, error)
	// List resolves every favourite id to full metadata. Ids the catalog
	// cannot resolve are dropped from the result, never an error.
	List(ctx context.Context, userID string) ([]domain.Movie, error)
}
