package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinetrack/favorites-api/internal/core/domain"
	"github.com/cinetrack/favorites-api/internal/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Favourites = append([]string(nil), u.Favourites...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateFavourites(_ context.Context, userID string, favourites []string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Favourites = append([]string(nil), favourites...)
	return nil
}

// stubHasher avoids bcrypt's work factor in service-level tests.
type stubHasher struct{}

func (stubHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }
func (stubHasher) Verify(plaintext, hash string) bool    { return hash == "hashed:"+plaintext }

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, stubHasher{}, token.NewCodec("secret"), time.Hour, zerolog.Nop())
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	reg, err := svc.Register(context.Background(), "alice", "Alice@X.com", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if reg.Token == "" {
		t.Fatalf("expected a token on registration")
	}
	if reg.User.Email != "alice@x.com" {
		t.Fatalf("expected normalized email, got %q", reg.User.Email)
	}
	if len(reg.User.Favourites) != 0 {
		t.Fatalf("expected empty favourites on registration")
	}

	login, err := svc.Login(context.Background(), "alice@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Fatalf("login identity %q does not match registered %q", login.User.ID, reg.User.ID)
	}

	claims, err := token.NewCodec("secret").Verify(login.Token)
	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}
	if claims.UserID != reg.User.ID {
		t.Fatalf("token user_id %q does not match registered %q", claims.UserID, reg.User.ID)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	cases := []struct {
		name                      string
		username, email, password string
	}{
		{"short username", "al", "alice@x.com", "secret1"},
		{"long username", "a-very-long-username-over-twenty", "alice@x.com", "secret1"},
		{"bad email", "alice", "not-an-email", "secret1"},
		{"short password", "alice", "alice@x.com", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.username, tc.email, tc.password)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_EmailConflictPrecedence(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "alice", "alice@x.com", "secret1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same email, different username: conflict must name the email.
	if _, err := svc.Register(context.Background(), "alice2", "alice@x.com", "secret1"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Both collide: email is still reported (fixed precedence).
	if _, err := svc.Register(context.Background(), "alice", "alice@x.com", "secret1"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken when both collide, got %v", err)
	}

	// Username-only collision reports the username.
	if _, err := svc.Register(context.Background(), "alice", "other@x.com", "secret1"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_UniformRejection(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "alice", "alice@x.com", "secret1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "alice@x.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "ghost@x.com", "secret1")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPass.Error() != unknownEmail.Error() {
		t.Fatalf("rejections must be indistinguishable: %q vs %q", wrongPass, unknownEmail)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	reg, err := svc.Register(context.Background(), "alice", "alice@x.com", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Mutate favourites behind the token's back: profile reads the
	// persisted state, not the claims.
	if err := repo.UpdateFavourites(context.Background(), reg.User.ID, []string{"603"}); err != nil {
		t.Fatalf("update favourites failed: %v", err)
	}

	profile, err := svc.Profile(context.Background(), reg.User.ID)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if len(profile.Favourites) != 1 || profile.Favourites[0] != "603" {
		t.Fatalf("expected fresh favourites, got %v", profile.Favourites)
	}

	if _, err := svc.Profile(context.Background(), "gone"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
