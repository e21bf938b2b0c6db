// Package token issues and verifies signed session tokens. Tokens are
// self-contained HS256 JWTs; the signing secret is process-wide config,
// so rotating it invalidates every outstanding session.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cinetrack/favorites-api/internal/core/domain"
	"github.com/cinetrack/favorites-api/internal/core/ports"
)

type sessionClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Codec implements ports.TokenCodec on HS256 JWTs.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Issue(claims ports.Claims, ttl time.Duration) (string, error) {
	issued := claims.IssuedAt
	if issued.IsZero() {
		issued = time.Now().UTC()
	}
	expiry := claims.Expiry
	if expiry.IsZero() {
		expiry = issued.Add(ttl)
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	})
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry. Every failure mode collapses into
// domain.ErrInvalidToken so callers cannot tell expired from forged
// from malformed.
func (c *Codec) Verify(raw string) (*ports.Claims, error) {
	var claims sessionClaims
	t, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	out := &ports.Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Expiry:   claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
