// Package errs provides standardized error types for the courier application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the domain:
//   - ObjectNotFoundError: unknown id or tracking id
//   - InvalidTransitionError: illegal parcel or pickup-request status change
//   - ConflictError: double-booking, deleting a non-pending parcel, re-deciding
//     a decided pickup request
//   - ValueIsRequiredError / ValueIsInvalidError: failed input validation
//   - UnauthorizedError / ForbiddenError: identity and ownership failures
//   - ResourceExhaustedError: bounded retry loops running out of attempts
//   - VersionConflictError: optimistic concurrency check failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel, enabling errors.Is checks
//
// HTTP adapters map sentinels to status codes in exactly one place, so the
// rest of the application never reasons about transport concerns.
package errs
