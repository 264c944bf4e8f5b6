// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read from the database
// directly, returning lightweight read models.
package queries

import (
	"errors"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/order"
	"kandypack/internal/pkg/guard"
)

var ErrGetUnplacedOrdersQueryIsNotConstructed = errors.New(
	"GetUnplacedOrdersQuery must be created via NewGetUnplacedOrdersQuery constructor",
)

// GetUnplacedOrdersQuery retrieves all orders awaiting allocation.
// Returns orders in "pending" or "confirmed" status for dispatcher review.
//
// Example:
//
//	query := NewGetUnplacedOrdersQuery()
//	handler := NewGetUnplacedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unplaced orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders awaiting allocation\n", len(orders))
//	for _, o := range orders {
//	    fmt.Printf("Order %s to %s needs %s of space\n",
//	        o.ID, o.DestinationCity, o.RequiredSpace)
//	}
type GetUnplacedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnplacedOrdersQuery creates a query to retrieve unplaced orders.
// This is a parameterless query that fetches all orders not yet on a trip.
func NewGetUnplacedOrdersQuery() GetUnplacedOrdersQuery {
	return GetUnplacedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnplacedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnplacedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnplacedOrdersQueryIsNotConstructed)
}

// GetUnplacedOrdersQueryResponse represents one order awaiting allocation.
// RequiredSpace is derived from the order's line items in the database, the
// same computation the allocation transaction performs on the aggregate.
type GetUnplacedOrdersQueryResponse struct {
	ID                kernel.UUID
	DestinationCity   string
	DestinationStreet string
	Status            order.Status
	RequiredSpace     kernel.Space
}
