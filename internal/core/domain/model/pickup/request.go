package pickup

import (
	"errors"
	"fmt"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")
)

// Request is the aggregate root for a merchant's pickup request: a batch of
// pending parcels to be collected by a courier at an address on a date.
//
// Invariants:
//   - pickup date is at least tomorrow (same-day pickup is not bookable)
//   - package count always equals the number of attached parcels
//   - a courier is set exactly when the request is approved
//   - rejection always carries admin notes
type Request struct {
	id         kernel.UUID
	merchantID kernel.UUID

	pickupAddress       string
	pickupDate          time.Time
	timeSlot            string
	specialInstructions string

	status     Status
	courierID  *kernel.UUID
	adminNotes string

	// parcelIDs holds the attached parcels in attachment order.
	parcelIDs []kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewRequest creates a pending pickup request. The parcel list must be
// non-empty and free of duplicates; ownership and per-parcel status checks
// are performed by the workflow engine, which sees the store. The derived
// package count overrides any client-supplied number.
func NewRequest(
	id kernel.UUID,
	merchantID kernel.UUID,
	pickupAddress string,
	pickupDate time.Time,
	timeSlot string,
	specialInstructions string,
	parcelIDs []kernel.UUID,
	now time.Time,
) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		merchantID.Validate(),
	); err != nil {
		return nil, err
	}
	if pickupAddress == "" {
		return nil, errs.NewValueIsRequiredError("pickupAddress")
	}
	if len(parcelIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("parcelIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(parcelIDs))
	for _, parcelID := range parcelIDs {
		if err := parcelID.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[parcelID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"parcelIds",
				fmt.Errorf("parcel %s is listed twice", parcelID),
			)
		}
		seen[parcelID] = struct{}{}
	}

	if err := validatePickupDate(pickupDate, now); err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Request{
		id:                  id,
		merchantID:          merchantID,
		pickupAddress:       pickupAddress,
		pickupDate:          pickupDate,
		timeSlot:            timeSlot,
		specialInstructions: specialInstructions,
		status:              StatusPending,
		parcelIDs:           append([]kernel.UUID(nil), parcelIDs...),
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}, nil
}

// validatePickupDate enforces the booking policy: the pickup date must fall
// on tomorrow or later, compared at day granularity in UTC.
func validatePickupDate(pickupDate, now time.Time) error {
	today := now.UTC().Truncate(24 * time.Hour)
	requested := pickupDate.UTC().Truncate(24 * time.Hour)
	if !requested.After(today) {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickupDate",
			fmt.Errorf("%s is not at least one day ahead", pickupDate.Format("2006-01-02")),
		)
	}
	return nil
}

// RestoreRequest reconstructs a pickup request from persistence. No booking
// policy is re-applied: a request legitimately outlives its pickup date.
func RestoreRequest(
	id kernel.UUID,
	merchantID kernel.UUID,
	pickupAddress string,
	pickupDate time.Time,
	timeSlot string,
	specialInstructions string,
	status Status,
	courierID *kernel.UUID,
	adminNotes string,
	parcelIDs []kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		merchantID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Request{
		id:                  id,
		merchantID:          merchantID,
		pickupAddress:       pickupAddress,
		pickupDate:          pickupDate,
		timeSlot:            timeSlot,
		specialInstructions: specialInstructions,
		status:              status,
		courierID:           courierID,
		adminNotes:          adminNotes,
		parcelIDs:           append([]kernel.UUID(nil), parcelIDs...),
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Request was created through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request identifier.
func (r *Request) ID() kernel.UUID { return r.id }

// MerchantID returns the owning merchant's user ID.
func (r *Request) MerchantID() kernel.UUID { return r.merchantID }

// PickupAddress returns the collection address.
func (r *Request) PickupAddress() string { return r.pickupAddress }

// PickupDate returns the requested collection date.
func (r *Request) PickupDate() time.Time { return r.pickupDate }

// TimeSlot returns the optional collection time slot, empty when unset.
func (r *Request) TimeSlot() string { return r.timeSlot }

// SpecialInstructions returns the optional instructions for the courier.
func (r *Request) SpecialInstructions() string { return r.specialInstructions }

// Status returns the current workflow status.
func (r *Request) Status() Status { return r.status }

// CourierID returns the assigned courier's ID, nil before approval.
func (r *Request) CourierID() *kernel.UUID { return r.courierID }

// AdminNotes returns the decision notes, set on rejection.
func (r *Request) AdminNotes() string { return r.adminNotes }

// ParcelIDs returns a copy of the attached parcel identifiers.
func (r *Request) ParcelIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), r.parcelIDs...)
}

// PackageCount returns the number of attached parcels.
func (r *Request) PackageCount() int { return len(r.parcelIDs) }

// CreatedAt returns the creation timestamp.
func (r *Request) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last modification timestamp.
func (r *Request) UpdatedAt() time.Time { return r.updatedAt }

// IsOpen reports whether the request currently holds its parcels.
func (r *Request) IsOpen() bool { return r.status.IsOpen() }

// EnsureOwnedBy returns a ForbiddenError unless the request belongs to the
// given merchant.
func (r *Request) EnsureOwnedBy(merchantID kernel.UUID) error {
	if !r.merchantID.IsEqual(merchantID) {
		return errs.NewForbiddenError(
			fmt.Sprintf("pickup request %s does not belong to merchant %s", r.id, merchantID),
		)
	}
	return nil
}

// Approve moves the request to approved and records the courier. The caller
// must have verified the courier is active and must cascade the parcel
// transitions in the same transaction.
func (r *Request) Approve(courierID kernel.UUID, now time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	if err := ValidateTransition(r.status, StatusApproved); err != nil {
		return err
	}

	r.status = StatusApproved
	r.courierID = &courierID
	r.updatedAt = now.UTC()
	return nil
}

// Reject declines the request. Admin notes are mandatory so every rejection
// is auditable; linked parcels are left untouched.
func (r *Request) Reject(adminNotes string, now time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if adminNotes == "" {
		return errs.NewValueIsRequiredError("adminNotes")
	}
	if err := ValidateTransition(r.status, StatusRejected); err != nil {
		return err
	}

	r.status = StatusRejected
	r.adminNotes = adminNotes
	r.updatedAt = now.UTC()
	return nil
}

// Cancel withdraws a still-pending request on behalf of the merchant.
func (r *Request) Cancel(now time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := ValidateTransition(r.status, StatusCancelled); err != nil {
		return err
	}

	r.status = StatusCancelled
	r.updatedAt = now.UTC()
	return nil
}

// AttachParcel adds one more parcel to a still-pending request. The caller
// must have run the same ownership and availability checks as at creation.
func (r *Request) AttachParcel(parcelID kernel.UUID, now time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := parcelID.Validate(); err != nil {
		return err
	}
	if r.status != StatusPending {
		return errs.NewConflictError(
			fmt.Sprintf("pickup request %s is %s, parcels can only be added while pending", r.id, r.status),
		)
	}
	for _, existing := range r.parcelIDs {
		if existing.IsEqual(parcelID) {
			return errs.NewConflictError(
				fmt.Sprintf("parcel %s is already attached to pickup request %s", parcelID, r.id),
			)
		}
	}

	r.parcelIDs = append(r.parcelIDs, parcelID)
	r.updatedAt = now.UTC()
	return nil
}

// Complete marks an approved request as collected.
func (r *Request) Complete(now time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := ValidateTransition(r.status, StatusCompleted); err != nil {
		return err
	}

	r.status = StatusCompleted
	r.updatedAt = now.UTC()
	return nil
}
