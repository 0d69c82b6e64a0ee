package ports

import (
	"context"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	// Add persists a new account. Returns a ConflictError if the email is
	// already registered.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves an account by its normalized sign-in email.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
