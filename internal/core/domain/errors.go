package domain

import "errors"

// Service-boundary error taxonomy. The transport layer maps these to
// protocol status codes; services never reference HTTP.
var (
	// ErrValidation marks malformed caller input. Wrap it with the
	// field-specific message: fmt.Errorf("%w: password too short", ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken and ErrUsernameTaken are registration conflicts.
	// Email is always checked first, so when both collide the caller
	// deterministically sees the email conflict.
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers every session rejection: bad signature,
	// expired, malformed. The cause is deliberately opaque.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrUserNotFound = errors.New("user not found")

	// ErrMovieNotFound means the catalog could not confirm the item exists.
	ErrMovieNotFound = errors.New("movie not found in catalog")

	// ErrAlreadyFavorited is a distinguishable outcome, not a silent
	// success: duplicate intent is surfaced to the caller.
	ErrAlreadyFavorited = errors.New("movie already in favourites")

	// ErrCatalogUnavailable marks a per-item upstream failure. Inside
	// List it is swallowed; in Add it is surfaced.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
