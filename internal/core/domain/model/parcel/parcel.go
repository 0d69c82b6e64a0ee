package parcel

import (
	"errors"
	"fmt"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
	"fasttrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// Recipient is the contact information of the person receiving a parcel.
// All three fields are required; the courier cannot deliver without them.
type Recipient struct {
	name    string
	phone   string
	address string
}

// NewRecipient creates recipient contact details, requiring name, phone,
// and address to be non-empty.
func NewRecipient(name, phone, address string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientName")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientPhone")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipientAddress")
	}
	return Recipient{name: name, phone: phone, address: address}, nil
}

// Name returns the recipient's full name.
func (r Recipient) Name() string { return r.name }

// Phone returns the recipient's phone number.
func (r Recipient) Phone() string { return r.phone }

// Address returns the delivery address.
func (r Recipient) Address() string { return r.address }

// PackageInfo carries the physical metadata of a parcel. Every field is
// optional: merchants often create parcels before weighing them.
type PackageInfo struct {
	description string
	weightKg    float64
	dimensions  string
}

// NewPackageInfo creates package metadata. Weight, when given, must not be
// negative.
func NewPackageInfo(description string, weightKg float64, dimensions string) (PackageInfo, error) {
	if weightKg < 0 {
		return PackageInfo{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%g is negative", weightKg),
		)
	}
	return PackageInfo{description: description, weightKg: weightKg, dimensions: dimensions}, nil
}

// Description returns the free-text package description.
func (p PackageInfo) Description() string { return p.description }

// WeightKg returns the package weight in kilograms, 0 when unknown.
func (p PackageInfo) WeightKg() float64 { return p.weightKg }

// Dimensions returns the free-text dimensions, e.g. "30x20x10cm".
func (p PackageInfo) Dimensions() string { return p.dimensions }

// Parcel is the aggregate root for a shipment. It owns the status state
// machine and guarantees that every status change produces exactly one
// tracking update, keeping Parcel.status and the latest TrackingUpdate in
// sync (persisted together by the application layer in one transaction).
//
// Invariants:
//   - tracking ID is globally unique and immutable after creation
//   - status transitions follow the graph in ValidateTransition
//   - a parcel may only be deleted while still pending
type Parcel struct {
	id          kernel.UUID
	trackingID  kernel.TrackingID
	senderID    kernel.UUID
	recipient   Recipient
	pack        PackageInfo
	status      Status
	statusNotes string

	// version supports the optimistic concurrency check in the parcel
	// repository; it is incremented on every persisted update.
	version int

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewParcel creates a parcel in pending status. The tracking ID must already
// be collision-checked by the caller (the parcel store owns the retry loop).
func NewParcel(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	senderID kernel.UUID,
	recipient Recipient,
	pack PackageInfo,
	now time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		trackingID.Validate(),
		senderID.Validate(),
	); err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Parcel{
		id:            id,
		trackingID:    trackingID,
		senderID:      senderID,
		recipient:     recipient,
		pack:          pack,
		status:        StatusPending,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreParcel reconstructs a parcel from persistence without applying
// creation defaults. Used exclusively by repositories.
func RestoreParcel(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	senderID kernel.UUID,
	recipient Recipient,
	pack PackageInfo,
	status Status,
	statusNotes string,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		trackingID.Validate(),
		senderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is not a positive version", version),
		)
	}

	return &Parcel{
		id:            id,
		trackingID:    trackingID,
		senderID:      senderID,
		recipient:     recipient,
		pack:          pack,
		status:        status,
		statusNotes:   statusNotes,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the internal identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// TrackingID returns the public identifier.
func (p *Parcel) TrackingID() kernel.TrackingID { return p.trackingID }

// SenderID returns the owning merchant's user ID.
func (p *Parcel) SenderID() kernel.UUID { return p.senderID }

// Recipient returns the recipient contact details.
func (p *Parcel) Recipient() Recipient { return p.recipient }

// PackageInfo returns the physical package metadata.
func (p *Parcel) PackageInfo() PackageInfo { return p.pack }

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status { return p.status }

// StatusNotes returns the notes recorded with the latest status change.
func (p *Parcel) StatusNotes() string { return p.statusNotes }

// Version returns the optimistic concurrency version.
func (p *Parcel) Version() int { return p.version }

// CreatedAt returns the immutable creation timestamp.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification timestamp.
func (p *Parcel) UpdatedAt() time.Time { return p.updatedAt }

// IsOwnedBy reports whether the given user is the parcel's sender.
func (p *Parcel) IsOwnedBy(userID kernel.UUID) bool {
	return p.senderID.IsEqual(userID)
}

// ChangeStatus moves the parcel to next and returns the tracking update that
// must be appended in the same transaction. A transition to the current
// status is permitted and still produces a tracking update (the admin UI
// resubmits identical statuses with fresh notes), so the parcel status and
// the latest update never diverge.
func (p *Parcel) ChangeStatus(
	next Status,
	notes string,
	location string,
	actorID *kernel.UUID,
	now time.Time,
) (*TrackingUpdate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateTransition(p.status, next); err != nil {
		return nil, err
	}

	p.status = next
	p.statusNotes = notes
	p.updatedAt = now.UTC()

	return NewTrackingUpdate(kernel.NewUUID(), p.id, next, location, notes, actorID, now)
}

// UpdateDetails replaces the recipient contact details and package metadata.
// Only pending parcels can be edited: once a courier is on the way the label
// is printed and the declared contents are fixed.
func (p *Parcel) UpdateDetails(recipient Recipient, pack PackageInfo, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.status != StatusPending {
		return errs.NewConflictError(
			fmt.Sprintf("parcel %s cannot be edited in status %s", p.trackingID, p.status),
		)
	}

	p.recipient = recipient
	p.pack = pack
	p.updatedAt = now.UTC()
	return nil
}

// EnsureDeletable returns a ConflictError unless the parcel is still pending.
// Assigned and later parcels are physical objects in the network and must
// never disappear from the record.
func (p *Parcel) EnsureDeletable() error {
	if p.status != StatusPending {
		return errs.NewConflictError(
			fmt.Sprintf("parcel %s cannot be deleted in status %s", p.trackingID, p.status),
		)
	}
	return nil
}
