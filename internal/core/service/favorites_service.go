package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cinetrack/favorites-api/internal/core/domain"
	"github.com/cinetrack/favorites-api/internal/core/ports"
)

// FavoritesService implements set-membership operations on a user's
// favourites with read-time enrichment against the catalog.
type FavoritesService struct {
	repo    ports.UserRepository
	catalog ports.CatalogClient
	logger  zerolog.Logger
}

func NewFavoritesService(repo ports.UserRepository, catalog ports.CatalogClient, logger zerolog.Logger) *FavoritesService {
	return &FavoritesService{repo: repo, catalog: catalog, logger: logger}
}

// Add confirms the item exists upstream, then inserts it into the set.
// A duplicate is reported as domain.ErrAlreadyFavorited rather than
// collapsed into success.
func (s *FavoritesService) Add(ctx context.Context, userID, itemID string) ([]string, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: item id is required", domain.ErrValidation)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetMovie(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) || errors.Is(err, domain.ErrCatalogUnavailable) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}

	if !user.AddFavourite(itemID) {
		return nil, domain.ErrAlreadyFavorited
	}

	if err := s.repo.UpdateFavourites(ctx, user.ID, user.Favourites); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("item_id", itemID).Msg("favourite added")
	return user.Favourites, nil
}

// Remove deletes the item from the set. Removal of an absent id is a
// success: ensure-absence has no failure mode.
func (s *FavoritesService) Remove(ctx context.Context, userID, itemID string) ([]string, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.RemoveFavourite(itemID)
	if err := s.repo.UpdateFavourites(ctx, user.ID, user.Favourites); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("item_id", itemID).Msg("favourite removed")
	return user.Favourites, nil
}

// List resolves every favourite to full metadata, all lookups in
// flight at once. Ids the catalog cannot resolve are logged and dropped
// so partial catalog outages never hide the rest of the set. The result
// follows the stored snapshot order minus the dropped ids.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]domain.Movie, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := user.Favourites
	resolved := make([]*domain.Movie, len(snapshot))

	var g errgroup.Group
	for i, id := range snapshot {
		g.Go(func() error {
			movie, err := s.catalog.GetMovie(ctx, id)
			if err != nil {
				s.logger.Warn().Err(err).Str("user_id", userID).Str("item_id", id).Msg("favourite dropped from listing")
				return nil
			}
			resolved[i] = movie
			return nil
		})
	}
	_ = g.Wait()

	movies := make([]domain.Movie, 0, len(snapshot))
	for _, m := range resolved {
		if m != nil {
			movies = append(movies, *m)
		}
	}
	return movies, nil
}
