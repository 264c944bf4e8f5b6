package queries

import (
	"errors"
	"time"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/pkg/guard"
)

var ErrGetTripAvailabilityQueryIsNotConstructed = errors.New(
	"GetTripAvailabilityQuery must be created via NewGetTripAvailabilityQuery constructor",
)

// GetTripAvailabilityQuery retrieves all trips with their capacity ledgers.
// Dispatchers use this view to pick a trip with enough remaining space before
// issuing an allocation.
//
// The remaining figures are informational only. The allocation transaction
// re-reads the ledger under a row lock, so a stale number here can never cause
// overbooking.
//
// Example:
//
//	query := NewGetTripAvailabilityQuery()
//	handler := NewGetTripAvailabilityQueryHandler(db)
//
//	trips, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get trip availability: %w", err)
//	}
//
//	for _, t := range trips {
//	    fmt.Printf("Trip %s departs %s, %s remaining\n",
//	        t.TripID, t.DepartTime, t.RemainingCapacity)
//	}
type GetTripAvailabilityQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTripAvailabilityQuery creates a query to retrieve trip availability.
// This is a parameterless query that fetches all trips.
func NewGetTripAvailabilityQuery() GetTripAvailabilityQuery {
	return GetTripAvailabilityQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTripAvailabilityQueryIsNotConstructed if validation fails.
func (q GetTripAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetTripAvailabilityQueryIsNotConstructed)
}

// GetTripAvailabilityQueryResponse represents one trip's schedule and capacity
// ledger as committed at read time.
type GetTripAvailabilityQueryResponse struct {
	TripID            kernel.UUID
	TrainID           kernel.UUID
	RouteID           kernel.UUID
	StoreID           kernel.UUID
	DepartTime        time.Time
	ArriveTime        time.Time
	Capacity          kernel.Space
	CapacityUsed      kernel.Space
	RemainingCapacity kernel.Space
}
