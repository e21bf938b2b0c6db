// Package password implements credential hashing on bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// hashCost trades offline brute-force resistance against interactive
// login latency; 12 keeps a verify well under a second on current hardware.
const hashCost = 12

// Hasher implements ports.PasswordHasher on bcrypt.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: hashCost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. bcrypt's comparison is
// constant-time over the digest.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
