package commands

import (
	"fasttrack/internal/core/domain/model/account"
)

// PasswordHasher hashes and verifies sign-in credentials. Implemented with
// bcrypt in internal/pkg/auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) error
}

// TokenIssuer signs access tokens for authenticated accounts.
type TokenIssuer interface {
	Issue(user *account.User) (string, error)
}
