// Package auth provides the credential primitives behind sign-in: bcrypt
// password hashing and JWT access tokens.
package auth

import (
	"fasttrack/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt. The zero cost falls back to
// the library default.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost. Pass 0 to use
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash from the plaintext password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Compare verifies the plaintext password against a stored hash. Returns a
// non-nil error on mismatch.
func (h *BcryptHasher) Compare(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
