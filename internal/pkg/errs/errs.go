package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classify every failure the application can surface.
// Structured error types below unwrap to exactly one sentinel so callers
// can branch with errors.Is without inspecting messages.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrInvalidTransition = errors.New("status transition is invalid")
	ErrConflict          = errors.New("conflict")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrVersionConflict   = errors.New("version conflict")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that an object could not be located by the
// given identifier. ParamName names the lookup key (e.g. "parcelId",
// "trackingId") and ID carries the value that missed.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value does not satisfy
// its validation rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a mandatory value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError indicates an attempted state change that the
// status graph does not permit. From and To carry the status names.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair of statuses.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError indicates that the operation contradicts current state:
// double-booking a parcel, deleting a non-pending parcel, re-deciding a
// decided pickup request.
type ConflictError struct {
	Message string
	Cause   error
}

// NewConflictError creates a ConflictError with a human-readable message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.Message))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// UnauthorizedError indicates a missing or unverifiable identity.
type UnauthorizedError struct {
	Message string
	Cause   error
}

// NewUnauthorizedError creates an UnauthorizedError with a human-readable message.
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(message string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Message: message, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Message))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ForbiddenError indicates an authenticated caller acting outside its
// role or ownership.
type ForbiddenError struct {
	Message string
	Cause   error
}

// NewForbiddenError creates a ForbiddenError with a human-readable message.
func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping an underlying cause.
func NewForbiddenErrorWithCause(message string, cause error) *ForbiddenError {
	return &ForbiddenError{Message: message, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrForbidden, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrForbidden, e.Message))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ResourceExhaustedError indicates that a bounded internal retry loop ran
// out of attempts, e.g. tracking-ID generation hitting collisions.
type ResourceExhaustedError struct {
	Operation string
	Attempts  int
	Cause     error
}

// NewResourceExhaustedError creates a ResourceExhaustedError for the given operation.
func NewResourceExhaustedError(operation string, attempts int) *ResourceExhaustedError {
	return &ResourceExhaustedError{Operation: operation, Attempts: attempts}
}

// NewResourceExhaustedErrorWithCause creates a ResourceExhaustedError wrapping an underlying cause.
func NewResourceExhaustedErrorWithCause(operation string, attempts int, cause error) *ResourceExhaustedError {
	return &ResourceExhaustedError{Operation: operation, Attempts: attempts, Cause: cause}
}

func (e *ResourceExhaustedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s after %d attempts (cause: %s)",
			ErrResourceExhausted, e.Operation, e.Attempts, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s after %d attempts", ErrResourceExhausted, e.Operation, e.Attempts))
}

func (e *ResourceExhaustedError) Unwrap() error {
	return ErrResourceExhausted
}

// VersionConflictError indicates an optimistic concurrency check failed:
// the aggregate was modified by another writer between read and write.
type VersionConflictError struct {
	ParamName string
	Version   int
	Cause     error
}

// NewVersionConflictError creates a VersionConflictError for the given aggregate and stale version.
func NewVersionConflictError(paramName string, version int) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, Version: version}
}

// NewVersionConflictErrorWithCause creates a VersionConflictError wrapping an underlying cause.
func NewVersionConflictErrorWithCause(paramName string, version int, cause error) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, Version: version, Cause: cause}
}

func (e *VersionConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s at version %d (cause: %s)",
			ErrVersionConflict, e.ParamName, e.Version, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s at version %d", ErrVersionConflict, e.ParamName, e.Version))
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
