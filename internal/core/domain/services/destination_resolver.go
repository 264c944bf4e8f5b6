package services

import (
	"errors"

	"kandypack/internal/core/domain/model/order"
	"kandypack/internal/core/domain/model/route"
	"kandypack/internal/core/domain/model/store"
)

// ErrDestinationStoreNotFound is returned when neither the order's destination
// city nor the route's end city is served by any known store. Trip synthesis
// cannot proceed without a destination depot.
var ErrDestinationStoreNotFound = errors.New("destination store not found")

// DestinationResolver is a domain service that picks the destination store for
// a synthesized trip.
//
// Selection rules:
//   - a store serving the order's destination city wins (case-insensitive)
//   - otherwise a store serving the route's end city is used as the fallback
//   - with no match at all, resolution fails
type DestinationResolver struct{}

// NewDestinationResolver creates a new DestinationResolver instance.
func NewDestinationResolver() DestinationResolver {
	return DestinationResolver{}
}

// Resolve picks the destination store for the given order and route from the
// known stores.
//
// Returns ErrDestinationStoreNotFound if no store serves either the order's
// destination city or the route's end city.
func (d DestinationResolver) Resolve(
	o *order.Order,
	rt *route.Route,
	stores []*store.Store,
) (*store.Store, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := rt.Validate(); err != nil {
		return nil, err
	}

	for _, s := range stores {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	for _, s := range stores {
		if s.ServesCity(o.DestinationCity()) {
			return s, nil
		}
	}

	for _, s := range stores {
		if s.ServesCity(rt.EndCity()) {
			return s, nil
		}
	}

	return nil, ErrDestinationStoreNotFound
}
