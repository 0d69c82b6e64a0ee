package queries

import (
	"errors"
	"time"

	"fasttrack/internal/core/domain/model/account"
	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/core/domain/model/parcel"
	"fasttrack/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery lists parcels for the dashboard. Merchants see only their
// own parcels; admins see everything. Both filters are optional: an exact
// status and a case-insensitive substring matched against the tracking ID
// and the recipient name.
type ListParcelsQuery struct {
	requesterID   kernel.UUID
	requesterRole account.Role
	statusFilter  string
	search        string

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a parcel listing query. An empty statusFilter
// or search disables that filter; a non-empty statusFilter must be a valid
// parcel status name.
func NewListParcelsQuery(
	requesterID kernel.UUID,
	requesterRole account.Role,
	statusFilter string,
	search string,
) (ListParcelsQuery, error) {
	if err := errors.Join(
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return ListParcelsQuery{}, err
	}
	if statusFilter != "" {
		if _, err := parcel.ParseStatus(statusFilter); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	return ListParcelsQuery{
		requesterID:   requesterID,
		requesterRole: requesterRole,
		statusFilter:  statusFilter,
		search:        search,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// RequesterID returns the requesting user's ID.
func (q ListParcelsQuery) RequesterID() kernel.UUID { return q.requesterID }

// RequesterRole returns the requesting user's role.
func (q ListParcelsQuery) RequesterRole() account.Role { return q.requesterRole }

// StatusFilter returns the optional status filter, empty when unset.
func (q ListParcelsQuery) StatusFilter() string { return q.statusFilter }

// Search returns the optional substring filter, empty when unset.
func (q ListParcelsQuery) Search() string { return q.search }

// ListParcelsQueryResponse is one parcel row in the listing read model.
type ListParcelsQueryResponse struct {
	ID                 kernel.UUID
	TrackingID         string
	SenderID           kernel.UUID
	RecipientName      string
	RecipientPhone     string
	DeliveryAddress    string
	PackageDescription string
	WeightKg           float64
	Dimensions         string
	Status             string
	StatusNotes        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
