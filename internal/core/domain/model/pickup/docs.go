// Package pickup provides domain entities and business logic for the
// pickup-request workflow: a merchant batches pending parcels into a request,
// an admin approves or rejects it, and approval assigns a courier.
//
// The package includes:
//   - Request: The aggregate root for a merchant's pickup request
//   - Status: A state machine enforcing the approval workflow
//
// Key business rules:
//   - pending -> approved | rejected | cancelled; approved -> completed;
//     nothing else (a rejected request can never be approved)
//   - The pickup date must be at least tomorrow
//   - Package count is derived from the attached parcels, never client-supplied
//   - Rejection requires admin notes for auditability
//   - A parcel belongs to at most one open (pending or approved) request;
//     the workflow engine enforces this against the store
package pickup
