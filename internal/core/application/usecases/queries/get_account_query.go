package queries

import (
	"errors"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery fetches the signed-in user's own profile.
type GetAccountQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a profile query.
func NewGetAccountQuery(userID kernel.UUID) (GetAccountQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetAccountQuery{}, err
	}

	return GetAccountQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// UserID returns the profile owner's ID.
func (q GetAccountQuery) UserID() kernel.UUID { return q.userID }

// GetAccountQueryResponse is the profile read model. The password hash
// never leaves the write side.
type GetAccountQueryResponse struct {
	ID           kernel.UUID
	Email        string
	FullName     string
	Role         string
	Status       string
	BusinessName string
	Phone        string
	Address      string
	CreatedAt    time.Time
}
