package queries

import (
	"errors"
	"time"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrListPickupRequestsQueryIsNotConstructed = errors.New(
	"ListPickupRequestsQuery must be created via NewListPickupRequestsQuery constructor",
)

// ListPickupRequestsQuery lists pickup requests: a merchant's own, or all of
// them for an admin. pendingOnly narrows the listing to requests awaiting a
// decision, which backs the admin approval inbox.
type ListPickupRequestsQuery struct {
	requesterID   kernel.UUID
	requesterRole account.Role
	pendingOnly   bool

	guard guard.ConstructorGuard
}

// NewListPickupRequestsQuery creates a pickup request listing query.
func NewListPickupRequestsQuery(
	requesterID kernel.UUID,
	requesterRole account.Role,
	pendingOnly bool,
) (ListPickupRequestsQuery, error) {
	if err := errors.Join(
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return ListPickupRequestsQuery{}, err
	}

	return ListPickupRequestsQuery{
		requesterID:   requesterID,
		requesterRole: requesterRole,
		pendingOnly:   pendingOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPickupRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListPickupRequestsQueryIsNotConstructed)
}

// RequesterID returns the requesting user's ID.
func (q ListPickupRequestsQuery) RequesterID() kernel.UUID { return q.requesterID }

// RequesterRole returns the requesting user's role.
func (q ListPickupRequestsQuery) RequesterRole() account.Role { return q.requesterRole }

// PendingOnly reports whether only undecided requests are wanted.
func (q ListPickupRequestsQuery) PendingOnly() bool { return q.pendingOnly }

// ListPickupRequestsQueryResponse is one pickup request row. PackageCount is
// derived from the parcel links at read time, never stored.
type ListPickupRequestsQueryResponse struct {
	ID                  kernel.UUID
	MerchantID          kernel.UUID
	PickupAddress       string
	PickupDate          time.Time
	TimeSlot            string
	SpecialInstructions string
	Status              string
	CourierID           *kernel.UUID
	AdminNotes          string
	PackageCount        int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
