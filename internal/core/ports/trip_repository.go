package ports

import (
	"context"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates.
//
// The trip row is the single authoritative copy of the capacity ledger.
// Allocation must load trips through GetForUpdate so that capacity decisions
// are made against a locked row; the ledger value must never be cached or
// mirrored outside the transaction that locked it.
type TripRepository interface {
	// Add persists a newly synthesized trip.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update persists changes to an existing trip, including its capacity ledger.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip by its unique identifier without locking.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// GetForUpdate retrieves a trip while taking a row-level write lock within
	// the current transaction (SELECT ... FOR UPDATE). Two concurrent
	// allocations against the same trip serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*trip.Trip, error)
}
