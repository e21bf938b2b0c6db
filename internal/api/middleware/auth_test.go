package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinetrack/favorites-api/internal/core/ports"
	"github.com/cinetrack/favorites-api/internal/pkg/token"
)

func issueToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	raw, err := token.NewCodec(secret).Issue(ports.Claims{
		UserID:   "u1",
		Username: "alice",
		Email:    "alice@x.com",
	}, ttl)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return raw
}

func invoke(t *testing.T, authorization string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(token.NewCodec("secret"))
	return rec, mw(next)(c)
}

func TestSession_ValidToken(t *testing.T) {
	raw := issueToken(t, "secret", time.Hour)

	called := false
	rec, err := invoke(t, "Bearer "+raw, func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "u1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get("email") != "alice@x.com" {
			t.Fatalf("email not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSession_MissingHeader(t *testing.T) {
	_, err := invoke(t, "", func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Token abc", "Bearer "} {
		_, err := invoke(t, header, func(c echo.Context) error {
			t.Fatalf("next must not be called for %q", header)
			return nil
		})

		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestSession_RejectedToken(t *testing.T) {
	// Signed with another secret: credential supplied but rejected → 403.
	raw := issueToken(t, "other-secret", time.Hour)

	_, err := invoke(t, "Bearer "+raw, func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestSession_ExpiredToken(t *testing.T) {
	// Correctly signed but already expired: still rejected.
	raw, err := token.NewCodec("secret").Issue(ports.Claims{
		UserID:   "u1",
		IssuedAt: time.Now().Add(-2 * time.Hour),
		Expiry:   time.Now().Add(-time.Hour),
	}, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, handlerErr := invoke(t, "Bearer "+raw, func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})

	he, ok := handlerErr.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", handlerErr)
	}
}
