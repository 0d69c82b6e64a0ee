// Package kernel provides core domain primitives for the courier system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for internal unique identifiers with validation
//     and comparison capabilities
//   - TrackingID: A value object for the public, human-shareable parcel
//     identifier printed on labels
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, suitable for concurrent use.
package kernel
