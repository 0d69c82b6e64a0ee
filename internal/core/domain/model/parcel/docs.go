// Package parcel provides domain entities and business logic for parcel
// management in the courier system. It implements the Parcel aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Parcel: The aggregate root managing identity, recipient and package
//     details, and the status lifecycle
//   - Status: A state machine enforcing valid parcel status transitions
//   - TrackingUpdate: An append-only event recording each status change
//
// Key business rules:
//   - Status follows pending -> assigned -> picked_up -> in_transit ->
//     delivered, with pending -> cancelled and any active status -> returned
//   - Delivered, returned, and cancelled are terminal
//   - Resubmitting the current status is an idempotent success and still
//     appends a tracking update
//   - Every status change produces exactly one TrackingUpdate, so the
//     parcel's status and its latest tracking update never diverge
//   - Only pending parcels may be deleted
package parcel
