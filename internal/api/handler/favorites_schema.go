package handler

import "github.com/cinetrack/favorites-api/internal/core/domain"

type addFavouriteRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// favouritesIDsResponse is returned by the mutating endpoints: the
// resulting id set, no enrichment.
type favouritesIDsResponse struct {
	Favourites []string `json:"favourites"`
}

// favouritesListResponse is the listing payload: a bare array of every
// resolvable favourite enriched to full catalog metadata.
type favouritesListResponse = []domain.Movie
