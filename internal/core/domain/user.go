package domain

import "time"

// User models a registered account. Favourites holds catalog item ids;
// membership is the only semantic — ordering reflects insertion but is
// not part of the contract.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Favourites   []string  `json:"favourites"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasFavourite reports whether itemID is already in the set.
func (u *User) HasFavourite(itemID string) bool {
	for _, id := range u.Favourites {
		if id == itemID {
			return true
		}
	}
	return false
}

// AddFavourite inserts itemID, preserving the no-duplicates invariant.
// Returns false when the id was already a member.
func (u *User) AddFavourite(itemID string) bool {
	if u.HasFavourite(itemID) {
		return false
	}
	u.Favourites = append(u.Favourites, itemID)
	return true
}

// RemoveFavourite deletes itemID from the set. Removing an absent id is
// a no-op, so the operation is idempotent.
func (u *User) RemoveFavourite(itemID string) {
	out := u.Favourites[:0]
	for _, id := range u.Favourites {
		if id != itemID {
			out = append(out, id)
		}
	}
	u.Favourites = out
}

// PublicUser is the external view of a User: identity fields only,
// never the credential hash.
type PublicUser struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Favourites []string  `json:"favourites"`
	CreatedAt  time.Time `json:"created_at"`
}

// Public returns the external view of the user.
func (u *User) Public() *PublicUser {
	favs := make([]string, len(u.Favourites))
	copy(favs, u.Favourites)
	return &PublicUser{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Favourites: favs,
		CreatedAt:  u.CreatedAt,
	}
}
