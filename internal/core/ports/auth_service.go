package ports

import (
	"context"

	"github.com/cinetrack/favorites-api/internal/core/domain"
)

// AuthResult is returned by Register and Login: a freshly minted session
// token plus the public view of the account.
type AuthResult struct {
	Token string
	User  *domain.PublicUser
}

// AuthService defines registration, login and profile retrieval.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.PublicUser, error)
}
