package handler

import "github.com/cinetrack/favorites-api/internal/core/domain"

func toUserResponse(u *domain.PublicUser) userResponse {
	favs := u.Favourites
	if favs == nil {
		favs = []string{}
	}
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Favourites: favs,
		CreatedAt:  u.CreatedAt.UTC(),
	}
}
