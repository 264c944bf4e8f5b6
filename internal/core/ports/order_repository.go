package ports

import (
	"context"
	"time"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are loaded together with their line items so that required space can
// always be derived from a fully hydrated aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate and its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order while taking a row-level write lock
	// within the current transaction (SELECT ... FOR UPDATE). Used by the
	// allocation transaction so that concurrent placements of the same order
	// serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPlacedOnDepartedTrips retrieves placed or scheduled orders whose
	// trip has departed by the given time. Used to advance them to in_transit.
	GetAllPlacedOnDepartedTrips(ctx context.Context, now time.Time) ([]*order.Order, error)

	// GetAllInTransitOnArrivedTrips retrieves in_transit orders whose trip has
	// arrived by the given time. Used to advance them to delivered.
	GetAllInTransitOnArrivedTrips(ctx context.Context, now time.Time) ([]*order.Order, error)
}
