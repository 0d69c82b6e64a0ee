// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fasttrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// PickupRequestRepoFactory provides access to the pickup request repository within a transaction.
	PickupRequestRepoFactory interface {
		PickupRequestRepository() ports.PickupRequestRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ParcelUoW manages transactions for parcel-only operations: creation,
	// status updates with their tracking entries, deletion.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// PickupUoW manages transactions spanning pickup requests and the parcels
	// they reference. Used for request creation, parcel attachment and the
	// completion cascade.
	PickupUoW interface {
		TxManager
		PickupRequestRepoFactory
		ParcelRepoFactory
	}

	// PickupUoWFactory creates new pickup unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// AssignmentUoW manages the approval transaction, which touches the
	// request, every linked parcel, and the chosen courier.
	AssignmentUoW interface {
		TxManager
		PickupRequestRepoFactory
		ParcelRepoFactory
		CourierRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// AccountUoW manages transactions for account operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
