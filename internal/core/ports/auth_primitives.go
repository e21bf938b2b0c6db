package ports

import "time"

// PasswordHasher abstracts the one-way credential transform so the
// service layer stays free of the hashing algorithm.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. It must
	// not leak timing differences between failure modes.
	Verify(plaintext, hash string) bool
}

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID   string
	Username string
	Email    string
	IssuedAt time.Time
	Expiry   time.Time
}

// TokenCodec issues and verifies self-contained signed session tokens.
// There is no server-side session state: possession of a token that
// verifies is the whole credential.
type TokenCodec interface {
	Issue(claims Claims, ttl time.Duration) (string, error)
	// Verify returns domain.ErrInvalidToken on any failure; the cause
	// (signature, expiry, malformed) is never distinguished.
	Verify(token string) (*Claims, error)
}
