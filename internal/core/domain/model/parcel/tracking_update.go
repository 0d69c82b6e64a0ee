package parcel

import (
	"errors"
	"time"

	"fasttrack/internal/core/domain/model/kernel"
)

// ErrTrackingUpdateIsNotConstructed is returned when a TrackingUpdate was not
// created through NewTrackingUpdate or RestoreTrackingUpdate.
var ErrTrackingUpdateIsNotConstructed = errors.New(
	"TrackingUpdate must be created via NewTrackingUpdate or RestoreTrackingUpdate",
)

// TrackingUpdate is an append-only event belonging to exactly one parcel.
// Updates are ordered by timestamp, and the most recent update's status must
// equal the parcel's current status; ChangeStatus on the Parcel aggregate is
// the only producer, which keeps the two in sync.
type TrackingUpdate struct {
	id       kernel.UUID
	parcelID kernel.UUID
	status   Status

	// location is free text ("Dhaka sorting hub"); empty when the actor
	// did not record one.
	location string
	notes    string

	// actorID identifies the admin or courier user who recorded the
	// update; nil for system-generated events such as the initial
	// pending record.
	actorID *kernel.UUID

	createdAt time.Time

	isConstructed bool
}

// NewTrackingUpdate creates a tracking event for a parcel status change.
func NewTrackingUpdate(
	id kernel.UUID,
	parcelID kernel.UUID,
	status Status,
	location string,
	notes string,
	actorID *kernel.UUID,
	now time.Time,
) (*TrackingUpdate, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return nil, err
		}
	}

	return &TrackingUpdate{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		location:      location,
		notes:         notes,
		actorID:       actorID,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreTrackingUpdate reconstructs a tracking event from persistence.
func RestoreTrackingUpdate(
	id kernel.UUID,
	parcelID kernel.UUID,
	status Status,
	location string,
	notes string,
	actorID *kernel.UUID,
	createdAt time.Time,
) (*TrackingUpdate, error) {
	return NewTrackingUpdate(id, parcelID, status, location, notes, actorID, createdAt)
}

// Validate ensures the TrackingUpdate was created through a constructor.
func (u *TrackingUpdate) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrTrackingUpdateIsNotConstructed
	}
	return nil
}

// ID returns the event identifier.
func (u *TrackingUpdate) ID() kernel.UUID { return u.id }

// ParcelID returns the identifier of the parcel the event belongs to.
func (u *TrackingUpdate) ParcelID() kernel.UUID { return u.parcelID }

// Status returns the parcel status recorded by this event.
func (u *TrackingUpdate) Status() Status { return u.status }

// Location returns the free-text location, empty when not recorded.
func (u *TrackingUpdate) Location() string { return u.location }

// Notes returns the notes recorded with the event.
func (u *TrackingUpdate) Notes() string { return u.notes }

// ActorID returns the recording user's ID, nil for system events.
func (u *TrackingUpdate) ActorID() *kernel.UUID { return u.actorID }

// CreatedAt returns the event timestamp.
func (u *TrackingUpdate) CreatedAt() time.Time { return u.createdAt }
