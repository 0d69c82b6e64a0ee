package queries

import (
	"errors"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/guard"
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery lists couriers for the admin dashboard. activeOnly
// narrows the listing to couriers eligible for assignment.
type ListCouriersQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewListCouriersQuery creates a courier listing query.
func NewListCouriersQuery(activeOnly bool) ListCouriersQuery {
	return ListCouriersQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive couriers are filtered out.
func (q ListCouriersQuery) ActiveOnly() bool { return q.activeOnly }

// ListCouriersQueryResponse is one courier row.
type ListCouriersQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Phone         string
	VehicleType   string
	VehicleNumber string
	CoverageArea  string
	Status        string
	CreatedAt     time.Time
}
