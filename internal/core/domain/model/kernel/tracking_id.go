package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"fasttrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// Tracking IDs are the public, human-shareable identifiers printed on labels
// and typed into the tracking page. Format: the "FT" carrier prefix followed
// by 8 uppercase hex characters, 10 characters total.
const (
	trackingIDPrefix = "FT"
	trackingIDLength = 10
)

var trackingIDPattern = regexp.MustCompile(`^FT[0-9A-F]{8}$`)

// ErrTrackingIDIsNotConstructed indicates a zero-value TrackingID that was not
// created via NewTrackingID or TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError("TrackingID must be created via NewTrackingID or TrackingIDFromString")

// TrackingID is a value object for the public parcel identifier. It is
// distinct from the parcel's internal UUID: tracking IDs are short, shareable,
// and globally unique, and never change after parcel creation.
//
// Uniqueness is probabilistic at generation time (8 hex chars of a random
// UUID); the parcel store collision-checks against existing records and
// regenerates on collision.
type TrackingID struct {
	value string
}

// NewTrackingID generates a new candidate tracking ID.
// Callers must collision-check it against the store before committing.
func NewTrackingID() TrackingID {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return TrackingID{
		value: trackingIDPrefix + strings.ToUpper(raw[:trackingIDLength-len(trackingIDPrefix)]),
	}
}

// TrackingIDFromString parses a tracking ID from external input.
// Lowercase input is accepted and normalized, matching what users type.
func TrackingIDFromString(s string) (TrackingID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !trackingIDPattern.MatchString(normalized) {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingId",
			fmt.Errorf("%q does not match the %s format", s, trackingIDPattern),
		)
	}
	return TrackingID{value: normalized}, nil
}

// String returns the canonical uppercase form, e.g. "FT1A2B3C4D".
func (t TrackingID) String() string {
	return t.value
}

// IsEqual reports whether two tracking IDs are the same.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingIDIsNotConstructed for zero values and a
// ValueIsInvalidError for malformed ones.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	if !trackingIDPattern.MatchString(t.value) {
		return errs.NewValueIsInvalidError("trackingId")
	}
	return nil
}
