package ports

import (
	"context"

	"github.com/cinetrack/favorites-api/internal/core/domain"
)

// UserRepository is the credential store: one record per user, holding
// identity, credential hash and the favourites set.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateFavourites replaces the stored favourites set for the user.
	// Record-level last-write-wins; concurrent mutation of one user's
	// set is an accepted race.
	UpdateFavourites(ctx context.Context, userID string, favourites []string) error
}
