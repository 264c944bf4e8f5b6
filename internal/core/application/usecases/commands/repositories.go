// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kandypack/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// TrainRepoFactory provides access to the train repository within a transaction.
	TrainRepoFactory interface {
		TrainRepository() ports.TrainRepository
	}

	// StoreRepoFactory provides access to the store repository within a transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AllocationUoW manages the transaction that allocates an order onto a trip.
	// It spans every aggregate the allocation may touch: the order being placed,
	// the trip whose capacity ledger is charged, and the train, route and store
	// records consulted when a trip has to be synthesized.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   order, _ := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   trip, _ := uow.TripRepository().GetForUpdate(ctx, tripID)
	//   // ... reserve capacity, place order
	//
	//   err = uow.Commit(ctx)
	AllocationUoW interface {
		TxManager
		OrderRepoFactory
		TripRepoFactory
		TrainRepoFactory
		StoreRepoFactory
		RouteRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}
)
